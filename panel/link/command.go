package link

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("link: unknown action")

// Actions is the complete command vocabulary.
var Actions = [...]string{
	"reset_network",
	"fw_strict",
	"fw_maint",
	"start_smb",
	"stop_smb",
	"reboot",
	"shutdown",
}

// Command is one outbound request for the host.
type Command struct {
	Action string `json:"action"`
}

// ValidAction reports whether a is in Actions.
func ValidAction(a string) bool {
	for _, v := range Actions {
		if v == a {
			return true
		}
	}
	return false
}

// EncodeCommand renders {"action":"<action>"} without a newline.
func EncodeCommand(action string) []byte {
	b, err := json.Marshal(Command{Action: action})
	if err != nil {
		// A struct holding one string always marshals.
		panic(err)
	}
	return b
}

// DecodeCommand parses and validates one command line.
func DecodeCommand(line []byte) (Command, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] != '{' {
		return Command{}, ErrNotObject
	}
	var c Command
	if err := json.Unmarshal(line, &c); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !ValidAction(c.Action) {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, c.Action)
	}
	return c, nil
}
