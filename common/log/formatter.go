package log

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

type customFormatter struct{}

var levelNames = []string{"P", "F", "E", "W", "I", "D", "T"}

const addressColumn = 8

// shortAddress keeps the tail of a bech32 address, which is where two
// addresses of the same prefix differ.
func shortAddress(v interface{}) string {
	s := fmt.Sprint(v)
	if len(s) > addressColumn {
		return s[len(s)-addressColumn:]
	}
	return (s + strings.Repeat("-", addressColumn))[0:addressColumn]
}

func (customFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return formatEntry(e), nil
}

func formatEntry(e *logrus.Entry) []byte {
	var buf strings.Builder
	fmt.Fprint(&buf, levelNames[e.Level], "|")
	fmt.Fprint(&buf, e.Time.Format(LogTimeLayout), "|")
	if v, ok := e.Data[FieldKeyAddress]; ok {
		buf.WriteString(shortAddress(v))
		buf.WriteString("|")
	} else {
		buf.WriteString(strings.Repeat("-", addressColumn) + "|")
	}
	if v, ok := e.Data[FieldKeyChain]; ok {
		fmt.Fprint(&buf, v, "|")
	} else {
		buf.WriteString("------|")
	}
	if v, ok := e.Data[FieldKeyModule]; ok {
		fmt.Fprint(&buf, v, "|")
	} else if e.HasCaller() {
		fmt.Fprint(&buf, getPackageName(e.Caller.Function), "|")
	} else {
		buf.WriteString("--|")
	}
	if e.HasCaller() {
		fmt.Fprint(&buf, path.Base(e.Caller.File), ":", e.Caller.Line, " ")
	}
	buf.WriteString(strings.TrimRight(e.Message, "\n"))

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if _, ok := systemFields[k]; ok {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, " %s=%v", k, e.Data[k])
	}
	buf.WriteString("\n")
	return []byte(buf.String())
}
