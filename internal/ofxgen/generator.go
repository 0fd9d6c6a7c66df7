// Package ofxgen renders bank statements as an OFX 2.0.2 checking account
// statement.
//
// A Generator produces one document in three parts, written in order:
// Header, Statements and Trailer. Statements accumulates the ending balance
// that Trailer reports, so the same Generator must be used for all three.
package ofxgen

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/csv-ofx/internal/dateutils"
	"fjacquet/csv-ofx/internal/models"
	"fjacquet/csv-ofx/internal/textutils"

	"github.com/shopspring/decimal"
)

// Generator holds the state of one OFX document for one account.
type Generator struct {
	account models.AccountSettings
	floor   models.Optional[time.Time]
	now     func() time.Time
	balance decimal.Decimal
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the clock used for DTSERVER and DTASOF.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New creates a Generator for account. floor is the configured start of the
// statement window; when unset the window starts at the earliest statement,
// or at 2001-01-01 when there are none.
func New(account models.AccountSettings, floor models.Optional[time.Time], opts ...Option) *Generator {
	g := &Generator{
		account: account,
		floor:   floor,
		now:     time.Now,
		balance: decimal.Zero,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Balance returns the sum of every statement rendered so far.
func (g *Generator) Balance() decimal.Decimal {
	return g.balance
}

// Header renders the prolog, the sign-on response and the opening of the
// statement response up to the account block.
func (g *Generator) Header() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8" ?>` + "\n")
	b.WriteString(`<?OFX OFXHEADER="200" VERSION="202" SECURITY="NONE" OLDFILEUID="NONE" NEWFILEUID="NONE"?>` + "\n")
	b.WriteString("<OFX>\n")
	b.WriteString("  <SIGNONMSGSRSV1>\n")
	b.WriteString("    <SONRS>\n")
	writeStatus(&b, "      ")
	fmt.Fprintf(&b, "      <DTSERVER>%s</DTSERVER>\n", dateutils.FormatOFX(g.now()))
	b.WriteString("      <LANGUAGE>ENG</LANGUAGE>\n")
	b.WriteString("    </SONRS>\n")
	b.WriteString("  </SIGNONMSGSRSV1>\n")
	b.WriteString("  <BANKMSGSRSV1>\n")
	b.WriteString("    <STMTTRNRS>\n")
	b.WriteString("      <TRNUID>0</TRNUID>\n")
	writeStatus(&b, "      ")
	b.WriteString("      <STMTRS>\n")
	fmt.Fprintf(&b, "        <CURDEF>%s</CURDEF>\n", textutils.EscapeXML(g.account.Currency))
	b.WriteString("        <BANKACCTFROM>\n")
	fmt.Fprintf(&b, "          <ACCTID>%s</ACCTID>\n", textutils.EscapeXML(g.account.AcctID))
	fmt.Fprintf(&b, "          <BANKID>%s</BANKID>\n", textutils.EscapeXML(g.account.BankID))
	fmt.Fprintf(&b, "          <ACCTTYPE>%s</ACCTTYPE>\n", models.AccountTypeChecking)
	b.WriteString("        </BANKACCTFROM>\n")
	return b.String()
}

func writeStatus(b *strings.Builder, indent string) {
	b.WriteString(indent + "<STATUS>\n")
	b.WriteString(indent + "  <CODE>0</CODE>\n")
	b.WriteString(indent + "  <SEVERITY>INFO</SEVERITY>\n")
	b.WriteString(indent + "</STATUS>\n")
}

// Statements renders the transaction list in the given order and adds every
// amount to the running balance. An empty list still yields a valid block.
func (g *Generator) Statements(statements []models.Statement) string {
	start, end := g.window(statements)

	var b strings.Builder
	b.WriteString("            <BANKTRANLIST>\n")
	fmt.Fprintf(&b, "              <DTSTART>%s</DTSTART>\n", dateutils.FormatOFX(start))
	fmt.Fprintf(&b, "              <DTEND>%s</DTEND>\n", dateutils.FormatOFX(end))
	for _, st := range statements {
		g.balance = g.balance.Add(st.Amount)
		writeTransaction(&b, st)
	}
	b.WriteString("            </BANKTRANLIST>\n")
	return b.String()
}

// window returns the DTSTART/DTEND bounds: the earliest of the floor and
// every statement date, and the latest statement date. An empty list starts
// at the floor and ends at 2001-01-01.
func (g *Generator) window(statements []models.Statement) (time.Time, time.Time) {
	fallback := dateutils.MustParseISODate(models.DefaultFromDate)
	if len(statements) == 0 {
		return g.floor.OrElse(fallback), fallback
	}

	start, end := statements[0].Date, statements[0].Date
	if floor, ok := g.floor.Get(); ok && floor.Before(start) {
		start = floor
	}
	for _, st := range statements[1:] {
		if st.Date.Before(start) {
			start = st.Date
		}
		if st.Date.After(end) {
			end = st.Date
		}
	}
	return start, end
}

func writeTransaction(b *strings.Builder, st models.Statement) {
	trnType := models.TransactionTypeCredit
	if !st.IsCredit() {
		trnType = models.TransactionTypeDebit
	}

	b.WriteString("              <STMTTRN>\n")
	fmt.Fprintf(b, "                <TRNTYPE>%s</TRNTYPE>\n", trnType)
	fmt.Fprintf(b, "                <DTPOSTED>%s</DTPOSTED>\n", dateutils.FormatOFX(st.Date))
	fmt.Fprintf(b, "                <TRNAMT>%s</TRNAMT>\n", st.Amount.String())
	fmt.Fprintf(b, "                <FITID>%s</FITID>\n", textutils.EscapeXML(st.Reference))
	fmt.Fprintf(b, "                <NAME>%s</NAME>\n", textutils.EscapeXML(st.Payee))
	if memo := Memo(st); memo != "" {
		fmt.Fprintf(b, "                <MEMO>%s</MEMO>\n", textutils.EscapeXML(memo))
	}
	b.WriteString("              </STMTTRN>\n")
}

// Memo composes the MEMO text of a statement, unescaped. Label tags and the
// memo (when it differs from the payee) are joined by a space, and the
// category is put in front of that with " / ".
func Memo(st models.Statement) string {
	var tags string
	if label, ok := st.Label.Get(); ok {
		tags = textutils.FormatLabels(label)
	}

	var memo string
	if m, ok := st.Memo.Get(); ok && m != st.Payee {
		memo = m
	}

	return textutils.JoinNonEmpty(" / ", st.Category, textutils.JoinNonEmpty(" ", tags, memo))
}

// Trailer renders the ledger balance and closes every element Header opened.
func (g *Generator) Trailer() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("        <LEDGERBAL>\n")
	fmt.Fprintf(&b, "          <BALAMT>%s</BALAMT>\n", g.balance.String())
	fmt.Fprintf(&b, "          <DTASOF>%s</DTASOF>\n", dateutils.FormatOFX(g.now()))
	b.WriteString("        </LEDGERBAL>\n")
	b.WriteString("      </STMTRS>\n")
	b.WriteString("    </STMTTRNRS>\n")
	b.WriteString("  </BANKMSGSRSV1>\n")
	b.WriteString("</OFX>\n")
	return b.String()
}
