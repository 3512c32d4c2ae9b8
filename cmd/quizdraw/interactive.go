package main

import (
	"bufio"
	"flag"
	"fmt"
	"strings"
)

type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

type interactiveCmd struct {
	r     *root
	fs    *flag.FlagSet
	execs commandList
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	i := &interactiveCmd{r: r, fs: fs}
	fs.Usage = usageFunc(i)
	fs.Var(&i.execs, "e", "run this command and exit (may be repeated)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *interactiveCmd) Program() string { return i.r.Program() + " interactive" }

func (i *interactiveCmd) FlagSet() *flag.FlagSet { return i.fs }

// executeLine runs one command line. done is true for exit.
func (i *interactiveCmd) executeLine(line string) (done bool, err error) {
	args := strings.Fields(line)
	switch {
	case len(args) == 0:
		return false, nil
	case args[0] == "exit" || args[0] == "quit":
		return true, nil
	case args[0] == "interactive":
		return false, nil
	}
	return false, i.r.dispatch(args)
}

func (i *interactiveCmd) Run() error {
	if len(i.execs) > 0 {
		for _, cmd := range i.execs {
			done, err := i.executeLine(cmd)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(i.r.stdout, "Enter commands (type 'exit' to quit)")
	scanner := bufio.NewScanner(i.r.stdin)
	for {
		fmt.Fprint(i.r.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(i.r.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}
