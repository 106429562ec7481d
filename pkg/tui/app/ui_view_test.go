package teaui

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/fieldlog/pkg/record"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewMenuListsChoices(t *testing.T) {
	m := newTestModel(newFakePersistence())

	view := stripANSI(m.View())
	for _, want := range []string{
		"Registro de Actividad",
		"Registro Diario",
		"Ver Resumen",
		"Calendario",
		"Personas",
		"Textos Favoritos",
		"Notas",
		"Gráficas",
		"Borrar datos",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("menu view missing %q; view=%q", want, view)
		}
	}
	if !strings.Contains(view, "→ Registro Diario") {
		t.Fatalf("expected first choice marked selected; view=%q", view)
	}
}

func TestViewMenuSwitchesLanguage(t *testing.T) {
	m := newTestModel(newFakePersistence())
	m.press("l")

	view := stripANSI(m.View())
	if !strings.Contains(view, "Activity Log") || !strings.Contains(view, "Daily Entry") {
		t.Fatalf("expected english labels after toggle; view=%q", view)
	}
}

func TestViewEntryFormShowsDayAndFocus(t *testing.T) {
	m := newTestModel(newFakePersistence())
	m.session = session{page: pageEntry, entryView: entryViewForm}
	m.day = record.Day("2026-02-10")
	m.form = entryForm{Hours: 2, Minutes: 30, Revisits: 1, Studies: 0}
	m.fieldFocus = fieldMinutes

	view := stripANSI(m.View())
	if !strings.Contains(view, "Detalles del 2026-02-10") {
		t.Fatalf("expected localized day header; view=%q", view)
	}
	if !strings.Contains(view, "→ Minutos  30") {
		t.Fatalf("expected focused minutes row; view=%q", view)
	}
}

func TestViewSummaryTotals(t *testing.T) {
	p := newFakePersistence()
	p.entries = []record.Entry{
		{Date: "2026-02-10", Hours: 1, Minutes: 75, Revisits: 2, Studies: 1},
		{Date: "2026-02-11", Hours: 2, Minutes: 0},
	}
	m := newTestModel(p)
	m.reload(t)
	m.session = session{page: pageEntry, entryView: entryViewSummary}
	m.summaryMonth = record.Day("2026-02-01").Time()

	view := stripANSI(m.View())
	if !strings.Contains(view, "Informe de febrero") {
		t.Fatalf("expected report title; view=%q", view)
	}
	// 1h75m + 2h = 4h 15m in total.
	if !strings.Contains(view, "4h 15m") {
		t.Fatalf("expected overflow minutes counted in total; view=%q", view)
	}
}

func TestViewConfirmShowsQuestion(t *testing.T) {
	p := newFakePersistence()
	p.people = []record.Person{{ID: 1, Name: "Ana", Date: "2026-02-10", Type: record.Revisit}}
	m := newTestModel(p)
	m.reload(t)
	m.navigate(pagePeople)
	m.press("d")

	view := stripANSI(m.View())
	if !strings.Contains(view, "¿Eliminar a Ana?") {
		t.Fatalf("expected interpolated confirm question; view=%q", view)
	}
}

func TestViewCalendarMarksSelection(t *testing.T) {
	p := newFakePersistence()
	p.entries = []record.Entry{{Date: "2026-03-05", Hours: 1}}
	m := newTestModel(p)
	m.reload(t)
	m.session = session{page: pageCalendar}
	m.calMonth = record.Day("2026-03-01").Time()
	m.calDay = 14

	view := stripANSI(m.View())
	if !strings.Contains(view, "marzo 2026") {
		t.Fatalf("expected localized month title; view=%q", view)
	}
	if !strings.Contains(view, "Do Lu Ma Mi Ju Vi Sa") {
		t.Fatalf("expected localized weekday header; view=%q", view)
	}
	if !strings.Contains(view, "31") {
		t.Fatalf("expected full month grid; view=%q", view)
	}
}

func TestViewChartsRenderSeries(t *testing.T) {
	p := newFakePersistence()
	p.entries = []record.Entry{{Date: record.Today(), Hours: 3, Revisits: 2, Studies: 1}}
	m := newTestModel(p)
	m.reload(t)
	m.session = session{page: pageCharts}

	view := stripANSI(m.View())
	if !strings.Contains(view, "Distribución del mes") {
		t.Fatalf("expected distribution title; view=%q", view)
	}
	if !strings.Contains(view, "Horas por mes") {
		t.Fatalf("expected trend title; view=%q", view)
	}
	if !strings.Contains(view, "█") {
		t.Fatalf("expected at least one filled bar; view=%q", view)
	}
}

func TestViewEmptyCollections(t *testing.T) {
	m := newTestModel(newFakePersistence())
	m.reload(t)

	m.session = session{page: pagePeople}
	if view := stripANSI(m.View()); !strings.Contains(view, "No hay personas guardadas todavía.") {
		t.Fatalf("expected people empty state; view=%q", view)
	}
	m.session = session{page: pageNotes}
	if view := stripANSI(m.View()); !strings.Contains(view, "No hay notas todavía.") {
		t.Fatalf("expected notes empty state; view=%q", view)
	}
	m.session = session{page: pageTexts}
	if view := stripANSI(m.View()); !strings.Contains(view, "No hay textos favoritos todavía.") {
		t.Fatalf("expected texts empty state; view=%q", view)
	}
}

func TestViewToastShows(t *testing.T) {
	m := newTestModel(newFakePersistence())
	m.session = session{page: pageEntry, entryView: entryViewForm}
	m.day = record.Day("2026-02-10")
	m.press("enter")

	view := stripANSI(m.View())
	if !strings.Contains(view, "Día guardado.") {
		t.Fatalf("expected save toast in view; view=%q", view)
	}
}
