package smtp

import (
	"fmt"
	"net/smtp"
	"strings"
)

type loginAuthMech struct {
	username string
	password string
	host     string
}

// loginAuth creates the AUTH LOGIN mechanism. Some corporate relays
// (Office365 among them) accept only LOGIN, not PLAIN.
func loginAuth(username, password, host string) smtp.Auth {
	return &loginAuthMech{
		username: username,
		password: password,
		host:     host,
	}
}

func (a *loginAuthMech) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if server.Name != a.host {
		return "", nil, fmt.Errorf("wrong host name: %s", server.Name)
	}
	return "LOGIN", []byte{}, nil
}

func (a *loginAuthMech) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}

	challenge := strings.ToLower(string(fromServer))
	switch {
	case strings.Contains(challenge, "username"):
		return []byte(a.username), nil
	case strings.Contains(challenge, "password"):
		return []byte(a.password), nil
	default:
		return nil, fmt.Errorf("unexpected server challenge: %s", fromServer)
	}
}
