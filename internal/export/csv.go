package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// ContentType is the MIME type of the exported document.
	ContentType = "text/csv; charset=utf-8"

	// FailureStatus is shown when the export could not be produced.
	FailureStatus = "Errore durante il download del CSV. Riprova."

	emptyConversation = "Nessun messaggio disponibile"
	filenamePrefix    = "chatbot_conversazione_"
	bom               = "\ufeff"
	rowSeparator      = "\r\n"
	timeLayout        = "2006-01-02 15:04:05"
	filenameLayout    = "20060102_150405"
)

// Header lists the fixed column names of the export.
var Header = []string{
	"indice",
	"ruolo",
	"messaggio",
	"data_ora_messaggio",
	"data_ora_inizio_conversazione",
	"data_ora_fine_conversazione",
	"data_ora_export_csv",
}

var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\r", `\n`, "\n", `\n`)

// Exporter renders snapshots as CSV.
type Exporter struct {
	// Location is the time zone of every formatted timestamp. Nil means local time.
	Location *time.Location
}

// NewExporter returns an Exporter formatting times in loc.
func NewExporter(loc *time.Location) *Exporter {
	return &Exporter{Location: loc}
}

// CSV renders the snapshot. Every field is quoted, line breaks inside a field
// become the two characters `\n` so each record stays on one line, records
// end with CRLF and the document starts with a UTF-8 byte order mark.
func (e *Exporter) CSV(s Snapshot) []byte {
	var b strings.Builder
	b.WriteString(bom)
	writeRecord(&b, Header)

	start := e.format(s.StartedAt)
	end := e.format(s.EndedAt)
	exported := e.format(s.ExportedAt)

	if len(s.Rows) == 0 {
		b.WriteString(rowSeparator)
		writeRecord(&b, []string{"", "", emptyConversation, "", start, end, exported})
	}
	for _, r := range s.Rows {
		b.WriteString(rowSeparator)
		writeRecord(&b, []string{
			strconv.Itoa(r.Seq),
			string(r.Role),
			r.Text,
			e.format(r.Timestamp),
			start,
			end,
			exported,
		})
	}
	return []byte(b.String())
}

// Filename names the export after the start of the conversation.
func (e *Exporter) Filename(s Snapshot) string {
	return filenamePrefix + s.StartedAt.In(e.location()).Format(filenameLayout) + ".csv"
}

// SuccessStatus is shown after a completed export of count messages.
func SuccessStatus(count int) string {
	return fmt.Sprintf("CSV scaricato correttamente (%d messaggi esportati).", count)
}

func (e *Exporter) format(t time.Time) string {
	return t.In(e.location()).Format(timeLayout)
}

func (e *Exporter) location() *time.Location {
	if e == nil || e.Location == nil {
		return time.Local
	}
	return e.Location
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(lineBreaks.Replace(f), `"`, `""`))
		b.WriteByte('"')
	}
}
