package commands

import (
	"errors"
	"net/mail"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var (
	ErrRegisterProcessServerCommandIsNotConstructed = errors.New(
		"RegisterProcessServerCommand must be created via NewRegisterProcessServerCommand constructor",
	)
	ErrServerNameIsRequired = errors.New("serverName is required")
)

// RegisterProcessServerCommand represents a process server completing
// registration. Registration creates the directory profile and reconciles
// every pending invitation addressed to the registered email.
type RegisterProcessServerCommand struct { //nolint:recvcheck //using for validation
	serverID        kernel.UUID
	serverName      string
	email           string
	zips            []string
	globallyVisible bool

	guard guard.ConstructorGuard
}

// NewRegisterProcessServerCommand creates a command to register a server.
func NewRegisterProcessServerCommand(
	serverID kernel.UUID,
	serverName, email string,
	zips []string,
	globallyVisible bool,
) (RegisterProcessServerCommand, error) {
	command := RegisterProcessServerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		serverID.Validate(),
		command.setServerName(serverName),
		command.setEmail(email),
	); err != nil {
		return RegisterProcessServerCommand{}, err
	}

	command.serverID = serverID
	command.zips = zips
	command.globallyVisible = globallyVisible
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProcessServerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProcessServerCommandIsNotConstructed)
}

// ServerID returns the new server's identifier.
func (c RegisterProcessServerCommand) ServerID() kernel.UUID {
	return c.serverID
}

// ServerName returns the server's display name.
func (c RegisterProcessServerCommand) ServerName() string {
	return c.serverName
}

// Email returns the registered email.
func (c RegisterProcessServerCommand) Email() string {
	return c.email
}

// Zips returns the zip codes the server covers.
func (c RegisterProcessServerCommand) Zips() []string {
	return c.zips
}

// GloballyVisible reports whether the profile joins the global listing.
func (c RegisterProcessServerCommand) GloballyVisible() bool {
	return c.globallyVisible
}

func (c *RegisterProcessServerCommand) setServerName(serverName string) error {
	if serverName == "" {
		return ErrServerNameIsRequired
	}

	c.serverName = serverName
	return nil
}

func (c *RegisterProcessServerCommand) setEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}
