package bot

const (
	HelpMessage = `
**Members Fetcher Help**
- *Alias: 'mf'*
**membersfetcher help | h** - Display this message
**membersfetcher fetch | run <guild_id> [<file_name>]** - Fetch members from guild and save them into a .csv file
**membersfetcher shutdown | suicide | kill** - Kills the bot instance
`

	ShutdownMessage = "Bot is shutting down. Goodbye world!"

	BadlyFormattedMessage = "The command is not formatted properly, please refer to `mf help` for commands usage."
	NotACommandMessage    = "Please use `mf help` to see available commands."

	FetchGuildFailedMessage   = "Failed to fetch guild. See console for further information"
	FetchMembersFailedMessage = "Failed to fetch members. See console for further information"
	BusyMessage               = "An export is already running, please wait for it to finish."

	fetchingMessage = "Fetching members from guild \"%s\", this may take a while..."
	fetchedMessage  = "Successfully fetched %d member.s from \"%s\" in %.2f seconds."
)
