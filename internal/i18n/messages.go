package i18n

var defaultMessages = `
	[app_usage]
	other = "Export GitHub issues to structured files"

	[app_description]
	other = "issue-mate exports the issues of a repository to one YAML file per issue, driving the pre-authenticated GitHub CLI (gh)"

	[help_command_usage]
	other = "Shows help"

	[factory_already_registered]
	other = "Factory {{.FactoryName}} is already registered"

	[export_command_usage]
	other = "Export issues to one YAML file per issue"

	[export_flag_output]
	other = "Destination directory for the exported files"

	[export_flag_state]
	other = "Which issues to include: open, closed or all"

	[export_flag_include_prs]
	other = "Include pull requests in the export"

	[export_flag_repo]
	other = "Repository in owner/name format (defaults to the origin remote)"

	[export_flag_jobs]
	other = "Number of parallel detail fetches"

	[export_listing]
	other = "Listing {{.State}} issues of {{.Repo}}..."

	[export_summary]
	one = "Wrote {{.Count}} issue file to {{.Dir}}"
	other = "Wrote {{.Count}} issue files to {{.Dir}}"

	[export_skipped]
	one = "{{.Count}} issue could not be fetched and was skipped"
	other = "{{.Count}} issues could not be fetched and were skipped"

	[export_failure_detail]
	other = "issue #{{.Number}}: {{.Error}}"

	[export_auth_hint]
	other = "Run 'gh auth login' to authenticate and try again"

	[export_invalid_repo]
	other = "'{{.Repo}}' is not a valid owner/name repository"

	[export_failed]
	other = "Export failed"

	[config_command_usage]
	other = "Manage the issue-mate configuration"

	[config_init_usage]
	other = "Interactive configuration setup"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the interface language"

	[config_set_lang_flag_usage]
	other = "Language code (en, es)"

	[config_set_output_usage]
	other = "Set the default output directory"

	[config_set_output_flag_usage]
	other = "Directory where exports are written by default"

	[config_set_state_usage]
	other = "Set the default state filter"

	[config_set_state_flag_usage]
	other = "Default state: open, closed or all"

	[current_config]
	other = "Current configuration"

	[language_label]
	other = "Language: {{.Lang}}"

	[output_label]
	other = "Default output directory: {{.Dir}}"

	[state_label]
	other = "Default state filter: {{.State}}"

	[include_prs_label]
	other = "Include pull requests: {{.Value}}"

	[gh_path_label]
	other = "GitHub CLI binary: {{.Path}}"

	[unsupported_language]
	other = "Unsupported language. Available languages: en, es"

	[language_configured]
	other = "Language set to {{.Lang}}"

	[output_configured]
	other = "Default output directory set to {{.Dir}}"

	[invalid_state]
	other = "Invalid state '{{.State}}'. It must be open, closed or all"

	[state_configured]
	other = "Default state set to {{.State}}"

	[init_welcome]
	other = "Welcome to issue-mate! Let's set up your exporter."

	[init_prompt_language_blank_keeps]
	other = "Language (en/es, blank keeps '{{.Current}}'): "

	[init_error_invalid_language]
	other = "That language is not supported, keeping the current one"

	[init_prompt_output_blank_keeps]
	other = "Default output directory (blank keeps '{{.Current}}'): "

	[init_prompt_state_blank_keeps]
	other = "Default state filter open/closed/all (blank keeps '{{.Current}}'): "

	[init_error_invalid_state]
	other = "That state is not valid, keeping the current one"

	[init_saved_ok]
	other = "Configuration saved"

	[doctor_command_usage]
	other = "Check that everything needed to export is in place"

	[doctor_running_checks]
	other = "Running health checks"

	[doctor_check_config_file]
	other = "Configuration file"

	[doctor_check_git_installed]
	other = "git installed"

	[doctor_check_git_repo]
	other = "Inside a git repository"

	[doctor_check_repo_detected]
	other = "GitHub repository detected"

	[doctor_check_gh_installed]
	other = "GitHub CLI (gh) installed"

	[doctor_check_gh_auth]
	other = "GitHub CLI authenticated"

	[doctor_suggestion_install_git]
	other = "Install git and make sure it is on your PATH"

	[doctor_suggestion_run_inside_repo]
	other = "Run issue-mate inside a git repository, or pass --repo to export"

	[doctor_suggestion_add_github_remote]
	other = "Add a GitHub origin remote, or pass --repo owner/name"

	[doctor_suggestion_install_gh]
	other = "Install the GitHub CLI: https://cli.github.com"

	[doctor_suggestion_gh_login]
	other = "Run 'gh auth login' to authenticate"

	[doctor_all_ok]
	other = "Everything looks good, ready to export"

	[doctor_problems_found]
	one = "{{.Count}} problem found"
	other = "{{.Count}} problems found"

	[completion_command_usage]
	other = "Generate shell completion scripts"

	[completion_command_description]
	other = "Prints a completion script for your shell. Add it to your profile to get tab completion for issue-mate"

	[completion_bash_usage]
	other = "Completion script for bash"

	[completion_zsh_usage]
	other = "Completion script for zsh"
	`
