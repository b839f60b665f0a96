package cli

import (
	"fmt"
	"io"
)

const welcome = `--- Welcome to pwvault ---
This appears to be your first time running the program.
Please create a master password. It encrypts every password you store.
There is no way to recover it. DO NOT FORGET IT.

`

// FirstTimeSetup asks for a new master password until it is non-empty and
// confirmed.
func FirstTimeSetup(p Prompter, out io.Writer) (string, error) {
	fmt.Fprint(out, welcome)

	for {
		password, err := p.ReadSecret("Create Master Password: ")
		if err != nil {
			return "", err
		}
		if password == "" {
			fmt.Fprintln(out, "Password cannot be empty. Please try again.")
			continue
		}

		confirm, err := p.ReadSecret("Confirm Master Password: ")
		if err != nil {
			return "", err
		}
		if password == confirm {
			fmt.Fprintln(out, "\nMaster password set successfully!")
			return password, nil
		}
		fmt.Fprintln(out, "\nPasswords do not match. Please try again.")
	}
}
