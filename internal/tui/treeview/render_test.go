package treeview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	jclog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/foundation/jack"
	"github.com/msto63/jackc/foundation/jack/token"
)

const counterJack = `class Counter {
    field int n;
    method void bump() {
        let n = n + 1;
        do Output.printString("n");
        return;
    }
}
`

func analyze(t *testing.T) *jack.Result {
	t.Helper()
	engine, err := jack.NewEngine(jack.Options{Logger: jclog.Discard()})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	result, err := engine.Analyze("Counter.jack", counterJack)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return result
}

func TestFlatten(t *testing.T) {
	result := analyze(t)
	rows := Flatten(result.Tree)

	if got := len(rows); got != result.Stats.Elements+result.Stats.Terminals {
		t.Fatalf("len(rows) = %d, want %d", got, result.Stats.Elements+result.Stats.Terminals)
	}

	want := []string{
		"class",
		"  keyword class",
		"  identifier Counter",
		"  symbol {",
		"  classVarDec",
		"    keyword field",
		"    keyword int",
		"    identifier n",
		"    symbol ;",
	}
	for i, w := range want {
		if got := FormatRow(rows[i]); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}

	last := rows[len(rows)-1]
	if FormatRow(last) != "  symbol }" {
		t.Errorf("last row = %q", FormatRow(last))
	}
}

func TestFormatRow_StringConstant(t *testing.T) {
	rows := Flatten(analyze(t).Tree)
	for _, row := range rows {
		if row.Kind() == token.KindStringConst {
			if got := strings.TrimSpace(FormatRow(row)); got != `stringConstant "n"` {
				t.Errorf("FormatRow() = %q", got)
			}
			return
		}
	}
	t.Fatal("no string constant row")
}

func TestLeafFilter(t *testing.T) {
	rows := Flatten(analyze(t).Tree)
	all := KindCounts(rows)

	tests := []struct {
		name   string
		keys   []string
		hidden []token.Kind
	}{
		{"show all", nil, nil},
		{"hide symbols", []string{"2"}, []token.Kind{token.KindSymbol}},
		{"hide keywords and strings", []string{"1", "5"}, []token.Kind{token.KindKeyword, token.KindStringConst}},
		{"toggle twice", []string{"3", "3"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ShowAll()
			for _, k := range tt.keys {
				if !filter.Toggle(k) {
					t.Fatalf("Toggle(%q) = false", k)
				}
			}

			visible := Filter(rows, filter)
			counts := KindCounts(visible)
			hidden := 0
			for _, kind := range tt.hidden {
				if counts[kind] != 0 {
					t.Errorf("%s rows still visible: %d", kind, counts[kind])
				}
				hidden += all[kind]
			}
			if len(visible) != len(rows)-hidden {
				t.Errorf("visible = %d, want %d", len(visible), len(rows)-hidden)
			}
		})
	}

	filter := ShowAll()
	if filter.Toggle("9") {
		t.Error("Toggle(9) = true")
	}
}

func TestModel_Keys(t *testing.T) {
	m := New(analyze(t))
	total := len(m.Visible())

	press := func(m Model, key string) Model {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		return next.(Model)
	}

	m = press(m, "2")
	if m.Filter().Symbol {
		t.Error("symbol leaves still shown after 2")
	}
	if len(m.Visible()) >= total {
		t.Errorf("visible = %d, want fewer than %d", len(m.Visible()), total)
	}

	m = press(m, "0")
	if m.Filter() != ShowAll() || len(m.Visible()) != total {
		t.Errorf("0 did not restore all rows: %d/%d", len(m.Visible()), total)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestModel_View(t *testing.T) {
	m := New(analyze(t))
	if m.View() != "Loading tree..." {
		t.Errorf("View() before sizing = %q", m.View())
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := next.(Model).View()
	for _, want := range []string{Logo, "Counter.jack", "classVarDec"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
