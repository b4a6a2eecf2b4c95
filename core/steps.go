package core

import (
	"fmt"

	"github.com/joanpaneque/new-project-script/config"
	"github.com/joanpaneque/new-project-script/patch"
)

const vueImport = `import laravel from 'laravel-vite-plugin';
import vue from '@vitejs/plugin-vue';`

const vuePluginBlock = `        vue({
            template: {
                transformAssetUrls: {
                    base: null,
                    includeAbsolute: false,
                },
            },
        }),
        laravel({`

// envRules builds the line rules that force the database block of the
// project's .env file. The connection key comes first and shadows the
// generic rules: its value is rewritten only away from mysql/sqlite,
// never when it is already something else. Every other key is forced to
// the configured value whether its line was commented out or not.
func envRules(cfg *config.Config) []patch.LineRule {
	rules := patch.KeyValueWhen("DB_CONNECTION", cfg.DBConnection, "mysql", "sqlite")
	rules = append(rules, patch.KeyValue("DB_HOST", cfg.DBHost)...)
	rules = append(rules, patch.KeyValue("DB_PORT", cfg.DBPort)...)
	rules = append(rules, patch.KeyValue("DB_DATABASE", cfg.DBDatabase)...)
	rules = append(rules, patch.KeyValue("DB_USERNAME", cfg.DBUsername)...)
	rules = append(rules, patch.KeyValue("DB_PASSWORD", cfg.DBPassword)...)
	return rules
}

// ProvisioningSteps returns the full ordered provisioning sequence. Later
// steps depend on the side effects of earlier ones (the project must exist
// before Sail is installed, the containers must be up before migrations
// run), so the order is part of the contract.
func ProvisioningSteps(cfg *config.Config) ([]Step, error) {
	dockerCompose, err := RenderDockerCompose(cfg)
	if err != nil {
		return nil, fmt.Errorf("error preparing step contents: %w", err)
	}

	return []Step{
		&ProcessStep{
			Desc:    "Installing Laravel installer",
			Command: "composer",
			Args:    []string{"global", "require", "laravel/installer"},
		},
		&CreateProjectStep{
			Desc: "Creating Laravel project",
		},
		&ProcessStep{
			Desc:    "Installing Laravel Sail",
			Command: "composer",
			Args:    []string{"require", "laravel/sail", "--dev"},
		},
		&FileWriteStep{
			Desc:    "Creating docker-compose.yml with PostgreSQL",
			Path:    "docker-compose.yml",
			Content: dockerCompose,
		},
		&LinePatchStep{
			Desc:  "Updating .env with PostgreSQL configuration",
			Path:  ".env",
			Rules: envRules(cfg),
		},
		&ProcessStep{
			Desc:    "Starting Sail containers",
			Command: "./vendor/bin/sail",
			Args:    []string{"up", "-d"},
		},
		&ProcessStep{
			Desc:    "Running database migrations",
			Command: "./vendor/bin/sail",
			Args:    []string{"artisan", "migrate"},
		},
		&ReplaceStep{
			Desc: "Updating composer.json scripts",
			Path: "composer.json",
			Replacements: []patch.Replacement{
				{Search: "php artisan", Replace: "./vendor/bin/sail artisan"},
			},
		},
		&ProcessStep{
			Desc:    "Installing Inertia.js Laravel adapter",
			Command: "./vendor/bin/sail",
			Args:    []string{"composer", "require", "inertiajs/inertia-laravel"},
		},
		&ProcessStep{
			Desc:    "Installing Vue and dependencies",
			Command: "./vendor/bin/sail",
			Args:    []string{"npm", "install", "vue", "@vitejs/plugin-vue", "@inertiajs/vue3"},
		},
		&ProcessStep{
			Desc:    "Installing Tailwind CSS",
			Command: "./vendor/bin/sail",
			Args:    []string{"npm", "install", "-D", "tailwindcss", "@tailwindcss/vite"},
		},
		&FileWriteStep{
			Desc:    "Updating resources/css/app.css",
			Path:    "resources/css/app.css",
			Content: appCSS,
		},
		&ReplaceStep{
			Desc: "Updating vite.config.js",
			Path: "vite.config.js",
			Replacements: []patch.Replacement{
				{
					Search:  "import laravel from 'laravel-vite-plugin';",
					Replace: vueImport,
					Guard:   "import vue from '@vitejs/plugin-vue'",
				},
				{
					Search:  "        laravel({",
					Replace: vuePluginBlock,
					Guard:   "vue({",
				},
			},
		},
		&FileWriteStep{
			Desc:     "Setting up Inertia views",
			Path:     "resources/views/app.blade.php",
			Content:  appBlade,
			ClearDir: "resources/views",
		},
		&ProcessStep{
			Desc:    "Installing Inertia middleware",
			Command: "./vendor/bin/sail",
			Args:    []string{"artisan", "inertia:middleware"},
		},
		&FileWriteStep{
			Desc:    "Updating bootstrap/app.php",
			Path:    "bootstrap/app.php",
			Content: bootstrapApp,
		},
		&FileWriteStep{
			Desc:    "Updating resources/js/app.js",
			Path:    "resources/js/app.js",
			Content: appJS,
		},
		&FileWriteStep{
			Desc:    "Updating routes/web.php",
			Path:    "routes/web.php",
			Content: webRoutes,
		},
		&MkdirStep{
			Desc: "Creating client-side directories",
			Paths: []string{
				"resources/js/Pages",
				"resources/js/Components",
				"resources/js/Layouts",
			},
		},
		&FileWriteStep{
			Desc:    "Creating Welcome page",
			Path:    "resources/js/Pages/Welcome.vue",
			Content: welcomePage,
		},
	}, nil
}
