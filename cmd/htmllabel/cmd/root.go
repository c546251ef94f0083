// Package cmd implements the htmllabel CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (dump, view, links).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/htmllabel/cmd/htmllabel/internal/config"
	"github.com/go-drift/htmllabel/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "htmllabel",
	Short: "htmllabel - render a small subset of HTML as styled text runs",
	Long: `htmllabel converts a restricted subset of HTML (<p>, <br>, <b>, <i>, <u>,
<a> and inline style attributes) into styled text runs, the way a text label
widget would display them.

Use "htmllabel <command> --help" for more information about a command.`,
	Usage: "htmllabel <command> [flags] [file]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Streams used by the commands. Tests swap them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// globalFlags are the flags accepted before or after the command name.
type globalFlags struct {
	configPath   string
	keepNewlines bool
	noStyles     bool
	lenient      bool
}

var globals globalFlags

// Execute runs the CLI with os.Args.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	globals = globalFlags{}

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "htmllabel version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 < len(args) {
				globals.configPath = args[i+1]
				i++
			} else {
				return fmt.Errorf("--config requires a file path")
			}
		case "--keep-newlines":
			globals.keepNewlines = true
		case "--no-styles":
			globals.noStyles = true
		case "--lenient":
			globals.lenient = true
		default:
			if strings.HasPrefix(arg, "--config=") {
				globals.configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// resolve loads the configuration and applies the global flag overrides.
func resolve() (*config.Resolved, error) {
	res, err := config.Resolve(globals.configPath)
	if err != nil {
		return nil, &errors.Error{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}
	if globals.keepNewlines {
		res.Options.CollapseNewlines = false
	}
	if globals.noStyles {
		res.Options.ApplyInlineStyles = false
	}
	if globals.lenient {
		res.Options.Markup.Lenient = true
	}
	return res, nil
}

// readInput returns the markup in the file named by args, or stdin when
// args is empty or "-".
func readInput(args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("expected at most one input file, got %d", len(args))
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --config FILE        Configuration file (default: ./htmllabel.yaml)")
	fmt.Fprintln(stdout, "  --keep-newlines      Keep newlines inside text")
	fmt.Fprintln(stdout, "  --no-styles          Ignore style attributes")
	fmt.Fprintln(stdout, "  --lenient            Parse with HTML5 rules instead of XML rules")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  htmllabel dump page.html          Print the runs as YAML")
	fmt.Fprintln(stdout, "  htmllabel view page.html          Show the label in the terminal")
	fmt.Fprintln(stdout, "  htmllabel links --match doc -     List links from stdin matching \"doc\"")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
