// Package employee contains the candidate/employee record returned by the
// remote ERP API. The payload is an open bag of optional fields; every field
// observed on the wire is declared here, and anything unknown is captured in
// an extension map so it round-trips through the key-value store unchanged.
package employee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// FlexInt is an integer field the ERP API sends either as a JSON number or
// as a quoted numeric string. Null and empty string decode to zero.
type FlexInt int64

// UnmarshalJSON implements tolerant number-or-string decoding.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode flex int: %w", err)
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("decode flex int %q: %w", s, err)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode flex int: %w", err)
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the value as a plain int.
func (f FlexInt) Int() int { return int(f) }

// Employee is the candidate/employee record. JSON tags match the wire names
// verbatim, including the irregular ones the API has shipped for years
// (employee_fristname, Highest_qualification, postcode/zipcode).
type Employee struct {
	ID              FlexInt `json:"id,omitempty"`
	UserID          FlexInt `json:"user_id,omitempty"`
	CompanyID       FlexInt `json:"company_id,omitempty"`
	CompanyIDCamel  FlexInt `json:"companyId,omitempty"`
	CompanyUniqueID string  `json:"company_unique_id,omitempty"`
	EmployeeID      string  `json:"employee_id,omitempty"`
	TrackingNumber  string  `json:"tracking_number,omitempty"`
	UserType        FlexInt `json:"user_type,omitempty"`

	FirstName  string `json:"employee_fristname,omitempty"`
	MiddleName string `json:"employee_middle_name,omitempty"`
	LastName   string `json:"employee_lastname,omitempty"`
	NickName   string `json:"employee_nick_name,omitempty"`
	Name       string `json:"name,omitempty"`

	Email         string `json:"employee_email,omitempty"`
	OfficialEmail string `json:"employee_officialemail,omitempty"`
	Phone1        string `json:"employee_phone1,omitempty"`
	Phone2        string `json:"employee_phone2,omitempty"`

	Designation          string  `json:"employee_designation,omitempty"`
	Position             string  `json:"employee_position,omitempty"`
	Department           string  `json:"employee_department,omitempty"`
	DepartmentID         FlexInt `json:"department_id,omitempty"`
	Title                string  `json:"title,omitempty"`
	HighestQualification string  `json:"Highest_qualification,omitempty"`
	ReportingTo          string  `json:"reporting_to,omitempty"`
	Manager              string  `json:"employee_manager,omitempty"`
	EmploymentType       FlexInt `json:"employment_type,omitempty"`
	EmploymentDate       string  `json:"employment_date,omitempty"`
	Experience           string  `json:"experience,omitempty"`
	SkillSet             string  `json:"skill_set,omitempty"`
	SourceOfHire         string  `json:"source_of_hire,omitempty"`
	Branch               string  `json:"branch,omitempty"`

	Address         string `json:"employee_address,omitempty"`
	City            string `json:"city,omitempty"`
	ProvinceState   string `json:"province_state,omitempty"`
	State           string `json:"employee_state,omitempty"`
	LocalGovernment string `json:"employee_local_government,omitempty"`
	Postcode        string `json:"postcode/zipcode,omitempty"`
	Country         string `json:"country,omitempty"`
	Nationality     string `json:"employee_nationality,omitempty"`

	DateOfBirth        string `json:"employee_date_of_birth,omitempty"`
	PlaceOfBirth       string `json:"employee_place_of_birth,omitempty"`
	MaritalStatus      string `json:"employee_maritalstatus,omitempty"`
	Sex                string `json:"employee_sex,omitempty"`
	BloodGroup         string `json:"blood_group,omitempty"`
	NumberOfChildren   string `json:"employee_number_of_children,omitempty"`
	IdentityCardNumber string `json:"employee_Identity_cardnumber,omitempty"`
	MeansOfID          string `json:"employee_means_of_identification,omitempty"`
	Signature          string `json:"signature,omitempty"`

	FathersName string `json:"fathers_name,omitempty"`
	MothersName string `json:"mothers_name,omitempty"`
	SpousesName string `json:"spouses_name,omitempty"`

	GuarantorFirstName    string `json:"guarantor_frist_Name,omitempty"`
	GuarantorLastName     string `json:"guarantor_last_Name,omitempty"`
	GuarantorPhoneNumber  string `json:"guarantor_phone_number,omitempty"`
	GuarantorEmailAddress string `json:"guarantor_email_address,omitempty"`
	GuarantorAddress      string `json:"guarantor_address,omitempty"`
	GuarantorRelationship string `json:"employee_grelationship,omitempty"`

	NextOfKinName         string `json:"name_of_next_of_kin,omitempty"`
	NextOfKinRelationship string `json:"relationship_nok,omitempty"`
	NextOfKinAddress      string `json:"address_nok,omitempty"`
	NextOfKinMobile       string `json:"mobile_no_nok,omitempty"`

	ProfileImageURL   string `json:"profile_image_url,omitempty"`
	Avatar            string `json:"avatar,omitempty"`
	OfferLetterURL    string `json:"offerletter_url,omitempty"`
	OfferLetter       string `json:"offerletter,omitempty"`
	EmployeeLetterURL string `json:"employeeletter_url,omitempty"`
	PolicyURL         string `json:"employeepolicy_url,omitempty"`
	AdditionalInfo    string `json:"paddtional_info,omitempty"`

	CurrentSalary   string  `json:"current_salary,omitempty"`
	BasicSalary     string  `json:"basic_salary,omitempty"`
	AccountNumber   string  `json:"account_number,omitempty"`
	AccountName     string  `json:"account_name,omitempty"`
	BankName        string  `json:"bank_name,omitempty"`
	BankCode        string  `json:"bank_code,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	PaygradeID      FlexInt `json:"paygrade_id,omitempty"`
	GradeLevelID    FlexInt `json:"gradelevel_id,omitempty"`
	Allowance       string  `json:"allowance,omitempty"`
	AllowanceAmount string  `json:"allowance_amount,omitempty"`
	AllowanceNote   string  `json:"allowance_note,omitempty"`
	AllowanceStatus FlexInt `json:"allowance_status,omitempty"`
	Deduction       string  `json:"deduction,omitempty"`
	DeductionAmount string  `json:"deduction_amount,omitempty"`
	DeductionNote   string  `json:"deduction_note,omitempty"`
	DeductionStatus FlexInt `json:"deduction_status,omitempty"`

	AccountStatus FlexInt `json:"account_status,omitempty"`
	LastLogin     string  `json:"lastlogin,omitempty"`
	DeletedAt     string  `json:"deleted_at,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`

	// Extra captures wire fields this struct does not declare. They are
	// preserved verbatim so new API fields survive a round trip through
	// the key-value store.
	Extra map[string]json.RawMessage `json:"-"`
}

// plain is Employee without the custom JSON methods.
type plain Employee

var (
	knownFieldsOnce sync.Once
	knownFields     map[string]struct{}
)

// fieldNames returns the set of declared wire names, computed once from the
// struct tags so the list cannot drift from the declarations above.
func fieldNames() map[string]struct{} {
	knownFieldsOnce.Do(func() {
		knownFields = make(map[string]struct{})
		t := reflect.TypeOf(Employee{})
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.SplitN(tag, ",", 2)[0]
			if name != "" {
				knownFields[name] = struct{}{}
			}
		}
	})
	return knownFields
}

// UnmarshalJSON decodes declared fields into the struct and stashes
// everything else in Extra.
func (e *Employee) UnmarshalJSON(data []byte) error {
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode employee: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode employee fields: %w", err)
	}
	for name := range fieldNames() {
		delete(raw, name)
	}
	if len(raw) > 0 {
		p.Extra = raw
	}

	*e = Employee(p)
	return nil
}

// MarshalJSON emits declared fields plus any captured extras. Declared
// fields win on name collisions.
func (e Employee) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(plain(e))
	if err != nil {
		return nil, fmt.Errorf("encode employee: %w", err)
	}
	if len(e.Extra) == 0 {
		return b, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("merge employee extras: %w", err)
	}
	for k, v := range e.Extra {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// ResolveTrackingNumber returns the offer tracking number, trying the
// aliased fields in precedence order: tracking_number, employee_id, then
// the numeric record id. Empty string when none resolve.
func (e *Employee) ResolveTrackingNumber() string {
	if e == nil {
		return ""
	}
	if e.TrackingNumber != "" {
		return e.TrackingNumber
	}
	if e.EmployeeID != "" {
		return e.EmployeeID
	}
	if e.ID > 0 {
		return strconv.FormatInt(int64(e.ID), 10)
	}
	return ""
}

// ContactEmail returns the preferred contact address:
// employee_email, then employee_officialemail.
func (e *Employee) ContactEmail() string {
	if e == nil {
		return ""
	}
	if e.Email != "" {
		return e.Email
	}
	return e.OfficialEmail
}

// Company returns the company id, trying company_id then companyId.
// Zero when neither is set.
func (e *Employee) Company() int {
	if e == nil {
		return 0
	}
	if e.CompanyID > 0 {
		return e.CompanyID.Int()
	}
	return e.CompanyIDCamel.Int()
}

// DisplayName returns the roster display name: the flat name field when the
// roster endpoint provides one, otherwise first and last name joined.
func (e *Employee) DisplayName() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return e.Name
	}
	parts := make([]string, 0, 2)
	if e.FirstName != "" {
		parts = append(parts, e.FirstName)
	}
	if e.LastName != "" {
		parts = append(parts, e.LastName)
	}
	return strings.Join(parts, " ")
}

// RosterTitle returns the line shown under a roster card name:
// position, then department, then the flat title field, then "Employee".
func (e *Employee) RosterTitle() string {
	if e == nil {
		return "Employee"
	}
	for _, v := range []string{e.Position, e.Department, e.Title} {
		if v != "" {
			return v
		}
	}
	return "Employee"
}
