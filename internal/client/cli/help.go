package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# zenkeeper

| Command | Description |
|---|---|
| ` + "`sync`" + ` | fetch changes since the last sync |
| ` + "`fullsync`" + ` | drop the local cache and download everything |
| ` + "`accounts [-all]`" + ` | list active accounts, or every account |
| ` + "`tags`" + ` | list categories |
| ` + "`transactions`" + ` | list transactions (alias ` + "`tx`" + `) |
| ` + "`suggest`" + ` | suggest a payee and categories |
| ` + "`addtx`" + ` | record an expense |
| ` + "`deltx <id>`" + ` | delete a transaction |
| ` + "`exit`" + ` | leave the program |

## transactions

    -from DATE  -to DATE  -account TITLE  -tag TITLE
    -payee TEXT  -min AMOUNT  -max AMOUNT

Dates are ` + "`YYYY-MM-DD`" + ` or phrases like "yesterday" and "2 weeks ago".

## addtx

    -account TITLE -amount AMOUNT [-payee TEXT] [-comment TEXT] [-tag TITLE] [-date DATE]

## suggest

    -payee TEXT  -comment TEXT
`

// renderHelp renders the command reference with the given glamour style,
// returning the raw Markdown when rendering fails.
func renderHelp(style string) string {
	out, err := glamour.Render(helpMarkdown, style)
	if err != nil {
		return helpMarkdown
	}
	return out
}

func (a *App) Help() error {
	_, err := fmt.Fprint(a.out, renderHelp(a.helpStyle))
	return err
}
