// file: cmd/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/d4ckard/shuttle/cmd/server"
	"github.com/d4ckard/shuttle/internal/project"
)

// Version information - should be set during build via ldflags.
var (
	Version    = "0.1.0-dev" // Default development version
	commitHash = "unknown"   //nolint:unused // Set via ldflags during build
	buildDate  = "unknown"   //nolint:unused // Set via ldflags during build
)

func main() {
	// Check if we have a subcommand.
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Process subcommands.
	switch os.Args[1] {
	case "check":
		checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
		quiet := checkCmd.Bool("quiet", false, "Suppress output; use the exit code only.")

		if err := checkCmd.Parse(os.Args[2:]); err != nil {
			log.Fatalf("Failed to parse check command flags: %+v", err)
		}

		if checkCmd.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Usage: shuttle-names check [-quiet] <name>")
			os.Exit(2)
		}

		candidate := checkCmd.Arg(0)
		if _, err := project.New(candidate); err != nil {
			if !*quiet {
				fmt.Fprintf(os.Stderr, "%s: %s\n", candidate, err)
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Printf("%s: valid\n", candidate)
		}

	case "rules":
		fmt.Println(project.Rules())

	case "serve":
		serveCmd := flag.NewFlagSet("serve", flag.ExitOnError)
		serveConfigPath := serveCmd.String("config", "", "Path to configuration file.")
		port := serveCmd.Int("port", 0, "Port to listen on (overrides config).")
		shutdownTimeout := serveCmd.Duration("shutdown-timeout", 5*time.Second, "Timeout for graceful shutdown.")
		debug := serveCmd.Bool("debug", false, "Enable debug logging.")

		if err := serveCmd.Parse(os.Args[2:]); err != nil {
			log.Fatalf("Failed to parse serve command flags: %+v", err)
		}

		if err := server.RunServer(*serveConfigPath, *port, *shutdownTimeout, *debug); err != nil {
			log.Fatalf("Server failed: %+v", err)
		}

	case "version":
		fmt.Printf("shuttle-names %s\n", Version)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// printUsage prints the top-level command help.
func printUsage() {
	fmt.Println("shuttle-names - project name validation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shuttle-names check [-quiet] <name>   Validate a candidate project name.")
	fmt.Println("  shuttle-names rules                   Print the naming rules.")
	fmt.Println("  shuttle-names serve [flags]           Run the validation API server.")
	fmt.Println("  shuttle-names version                 Print the version.")
	fmt.Println()
	fmt.Println("Serve flags:")
	fmt.Println("  -config <path>            Path to YAML configuration file.")
	fmt.Println("  -port <n>                 Port to listen on (overrides config).")
	fmt.Println("  -shutdown-timeout <dur>   Timeout for graceful shutdown.")
	fmt.Println("  -debug                    Enable debug logging.")
}
