package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joanpaneque/new-project-script/config"
	"github.com/joanpaneque/new-project-script/core"
	"github.com/joanpaneque/new-project-script/fs"
)

var rootCmd = &cobra.Command{
	Use:   "newproject",
	Short: "newproject provisions a Laravel project with Sail, PostgreSQL, Inertia and Vue",
	Long: `newproject is a one-shot provisioning tool: it creates a fresh Laravel
project and turns it into a Sail-managed stack with PostgreSQL, Redis,
Inertia.js, Vue and Tailwind CSS, including a starter page.`,
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create and provision a new project",
	Run: func(cmd *cobra.Command, args []string) {
		flags, err := parseCreateFlags(cmd)
		if err != nil {
			fmt.Printf("Error parsing flags: %v\n", err)
			os.Exit(1)
		}

		if err := runCreate(flags); err != nil {
			os.Exit(1)
		}
	},
}

type createFlags struct {
	name   string
	config string
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("name", "n", "", "The name of the project to create. Also used as the project directory name")
	createCmd.Flags().StringP("config", "c", "", "Path to custom configuration file")
}

func parseCreateFlags(cmd *cobra.Command) (createFlags, error) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return createFlags{}, err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return createFlags{}, err
	}

	return createFlags{
		name:   name,
		config: configPath,
	}, nil
}

func runCreate(flags createFlags) error {
	InitLogger()
	log := GetLogger()
	log.Debug("Initializing newproject CLI")

	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return err
	}

	name := flags.name
	if name == "" {
		name, err = promptProjectName()
		if err != nil {
			fmt.Printf("Error reading project name: %v\n", err)
			return err
		}
	}
	if name == "" {
		fmt.Println("No project name given, aborting.")
		return fmt.Errorf("no project name")
	}

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error resolving working directory: %v\n", err)
		return err
	}

	steps, err := core.ProvisioningSteps(cfg)
	if err != nil {
		fmt.Printf("Error building pipeline: %v\n", err)
		return err
	}

	publisher := NewCliStepPublisher(log)
	pipeline := core.NewPipeline(steps, fs.NewOsFileSystem(), publisher, log)

	if err := pipeline.Execute(name, workDir); err != nil {
		return err
	}

	fmt.Printf("\nSetup complete! Your Laravel project '%s' is ready.\n", name)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
