package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/query"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/google/uuid"
)

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseFlags parses args into fs. A help request is reported as done so the
// command returns quietly after the usage text.
func parseFlags(fs *flag.FlagSet, args []string) (done bool, err error) {
	err = fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return true, nil
	}
	return false, err
}

func (a *App) Sync(ctx context.Context) error {
	resp, err := a.sync.Sync(ctx)
	if err != nil {
		return err
	}
	a.printSummary("Synced", resp)
	return nil
}

func (a *App) FullSync(ctx context.Context) error {
	resp, err := a.sync.FullSync(ctx)
	if err != nil {
		return err
	}
	a.printSummary("Full sync done", resp)
	return nil
}

func (a *App) printSummary(prefix string, resp *models.DiffResponse) {
	fmt.Fprintf(a.out, "%s: %d accounts, %d transactions, %d tags, %d merchants, %d deletions\n",
		prefix, len(resp.Account), len(resp.Transaction), len(resp.Tag), len(resp.Merchant), len(resp.Deletion))
}

func (a *App) Accounts(ctx context.Context, args []string) error {
	fs := a.newFlagSet("accounts")
	all := fs.Bool("all", false, "include archived accounts")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}

	var (
		accounts []models.Account
		err      error
	)
	if *all {
		accounts, err = a.ledger.Accounts(ctx)
	} else {
		accounts, err = a.ledger.ActiveAccounts(ctx)
	}
	if err != nil {
		return err
	}
	instruments, err := a.ledger.Instruments(ctx)
	if err != nil {
		return err
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Title < accounts[j].Title })

	rows := make([][]string, 0, len(accounts))
	negative := make(map[int]bool)
	for i, acc := range accounts {
		balance := ""
		if acc.Balance != nil {
			var inst *models.Instrument
			if acc.Instrument != nil {
				inst = query.InstrumentByID(instruments, *acc.Instrument)
			}
			balance = formatMoney(*acc.Balance, inst)
			negative[i] = *acc.Balance < 0
		}
		rows = append(rows, []string{acc.Title, string(acc.Type), balance})
	}

	fmt.Fprintln(a.out, renderTable([]string{"Account", "Type", "Balance"}, rows, func(row, col int) bool {
		return col == 2 && negative[row]
	}))
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	tags, err := a.ledger.Tags(ctx)
	if err != nil {
		return err
	}
	titles := tagTitles(tags)
	sort.Slice(tags, func(i, j int) bool { return tags[i].Title < tags[j].Title })

	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		parent := ""
		if t.Parent != nil {
			parent = titles[*t.Parent]
		}
		rows = append(rows, []string{t.Title, parent})
	}
	fmt.Fprintln(a.out, renderTable([]string{"Tag", "Parent"}, rows, nil))
	return nil
}

func (a *App) Transactions(ctx context.Context, args []string) error {
	fs := a.newFlagSet("transactions")
	from := fs.String("from", "", "first day, inclusive")
	to := fs.String("to", "", "last day, inclusive")
	account := fs.String("account", "", "account title")
	tag := fs.String("tag", "", "tag title")
	payee := fs.String("payee", "", "payee substring")
	minAmount := fs.String("min", "", "minimum amount")
	maxAmount := fs.String("max", "", "maximum amount")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}

	now := a.now()
	f := query.NewFilter()
	fromDay, err := parseOptionalDay(*from, now)
	if err != nil {
		return err
	}
	toDay, err := parseOptionalDay(*to, now)
	if err != nil {
		return err
	}
	f.DateRange(fromDay, toDay)

	lo, err := parseOptionalAmount(*minAmount)
	if err != nil {
		return err
	}
	hi, err := parseOptionalAmount(*maxAmount)
	if err != nil {
		return err
	}
	f.AmountRange(lo, hi)

	if *account != "" {
		acc, err := a.ledger.FindAccountByTitle(ctx, *account)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%w: account %q", common.ErrNotFound, *account)
		}
		f.Account(acc.ID)
	}
	if *tag != "" {
		t, err := a.ledger.FindTagByTitle(ctx, *tag)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("%w: tag %q", common.ErrNotFound, *tag)
		}
		f.Tag(t.ID)
	}
	if *payee != "" {
		f.Payee(*payee)
	}

	txs, err := a.ledger.FilterTransactions(ctx, f)
	if err != nil {
		return err
	}
	accounts, err := a.ledger.Accounts(ctx)
	if err != nil {
		return err
	}
	tags, err := a.ledger.Tags(ctx)
	if err != nil {
		return err
	}

	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].Created > txs[j].Created
	})

	accTitles := make(map[models.AccountID]string, len(accounts))
	for _, acc := range accounts {
		accTitles[acc.ID] = acc.Title
	}
	tagNames := tagTitles(tags)

	rows := make([][]string, 0, len(txs))
	negative := make(map[int]bool)
	for i, t := range txs {
		amount, neg := txAmount(t)
		negative[i] = neg
		accID := t.OutcomeAccount
		if t.Outcome == 0 {
			accID = t.IncomeAccount
		}
		names := make([]string, 0, len(t.Tag))
		for _, id := range t.Tag {
			names = append(names, tagNames[id])
		}
		rows = append(rows, []string{
			t.Date.String(), amount, accTitles[accID], deref(t.Payee), strings.Join(names, ", "), t.ID.String(),
		})
	}

	fmt.Fprintln(a.out, renderTable([]string{"Date", "Amount", "Account", "Payee", "Tags", "ID"}, rows, func(row, col int) bool {
		return col == 1 && negative[row]
	}))
	fmt.Fprintf(a.out, "%d transactions\n", len(txs))
	return nil
}

// txAmount formats the movement of t: expenses are negative, income is
// positive and transfers show both legs.
func txAmount(t models.Transaction) (string, bool) {
	switch {
	case t.Income == 0:
		return formatAmount(-t.Outcome), t.Outcome > 0
	case t.Outcome == 0:
		return "+" + formatAmount(t.Income), false
	}
	return formatAmount(-t.Outcome) + " > +" + formatAmount(t.Income), false
}

func (a *App) Suggest(ctx context.Context, args []string) error {
	fs := a.newFlagSet("suggest")
	payee := fs.String("payee", "", "payee as typed")
	comment := fs.String("comment", "", "comment as typed")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if *payee == "" && *comment == "" {
		return errors.New("suggest needs -payee or -comment")
	}

	var req models.SuggestRequest
	if *payee != "" {
		req.Payee = payee
	}
	if *comment != "" {
		req.Comment = comment
	}
	resp, err := a.sync.Suggest(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Payee: %s\n", deref(resp.Payee))
	if resp.Merchant != nil {
		merchants, err := a.ledger.Merchants(ctx)
		if err != nil {
			return err
		}
		title := resp.Merchant.String()
		for _, m := range merchants {
			if m.ID == *resp.Merchant {
				title = m.Title
				break
			}
		}
		fmt.Fprintf(a.out, "Merchant: %s\n", title)
	}
	if len(resp.Tag) > 0 {
		tags, err := a.ledger.Tags(ctx)
		if err != nil {
			return err
		}
		names := tagTitles(tags)
		out := make([]string, 0, len(resp.Tag))
		for _, id := range resp.Tag {
			if n, ok := names[id]; ok {
				out = append(out, n)
			} else {
				out = append(out, id.String())
			}
		}
		fmt.Fprintf(a.out, "Tags: %s\n", strings.Join(out, ", "))
	}
	return nil
}

func (a *App) AddTx(ctx context.Context, args []string) error {
	fs := a.newFlagSet("addtx")
	account := fs.String("account", "", "account title")
	amount := fs.String("amount", "", "amount spent")
	payee := fs.String("payee", "", "payee")
	comment := fs.String("comment", "", "comment")
	tag := fs.String("tag", "", "tag title")
	date := fs.String("date", "", "day of the expense, today when empty")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if *account == "" || *amount == "" {
		return errors.New("addtx needs -account and -amount")
	}

	value, err := parseAmount(*amount)
	if err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("amount must be positive, got %s", *amount)
	}

	acc, err := a.ledger.FindAccountByTitle(ctx, *account)
	if err != nil {
		return err
	}
	if acc == nil {
		return fmt.Errorf("%w: account %q", common.ErrNotFound, *account)
	}
	if acc.Instrument == nil {
		return fmt.Errorf("account %q has no currency", acc.Title)
	}

	now := a.now()
	day := civil.DateOf(now)
	if *date != "" {
		if day, err = parseDay(*date, now); err != nil {
			return err
		}
	}

	tx := models.Transaction{
		ID:                models.TransactionID(uuid.NewString()),
		Changed:           now.Unix(),
		Created:           now.Unix(),
		User:              acc.User,
		IncomeInstrument:  *acc.Instrument,
		IncomeAccount:     acc.ID,
		OutcomeInstrument: *acc.Instrument,
		OutcomeAccount:    acc.ID,
		Outcome:           value,
		Date:              day,
	}
	if *payee != "" {
		tx.Payee = payee
	}
	if *comment != "" {
		tx.Comment = comment
	}
	if *tag != "" {
		t, err := a.ledger.FindTagByTitle(ctx, *tag)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("%w: tag %q", common.ErrNotFound, *tag)
		}
		tx.Tag = []models.TagID{t.ID}
	}

	if _, err := a.sync.PushTransactions(ctx, []models.Transaction{tx}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added transaction %s\n", tx.ID)
	return nil
}

func (a *App) DelTx(ctx context.Context, args []string) error {
	fs := a.newFlagSet("deltx")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: deltx <id>")
	}
	id := models.TransactionID(fs.Arg(0))

	txs, err := a.ledger.Transactions(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, t := range txs {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: transaction %q", common.ErrNotFound, id)
	}

	if _, err := a.sync.DeleteTransactions(ctx, []models.TransactionID{id}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted transaction %s\n", id)
	return nil
}

func tagTitles(tags []models.Tag) map[models.TagID]string {
	m := make(map[models.TagID]string, len(tags))
	for _, t := range tags {
		m[t.ID] = t.Title
	}
	return m
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
