package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/timeutil"
)

const calendarWidth = len("11 12 13 14 15 16 17") // an example week

// Month prints a month grid. Days with an entry print bold, today is
// highlighted.
func (pp *PrettyPrint) Month(then time.Time, entries []record.Entry) {
	days := timeutil.DaysIn(then)

	logged := make([]bool, days)
	for _, e := range entries {
		if e.Date.SameMonth(then) {
			logged[e.Date.Time().Day()-1] = true
		}
	}

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (calendarWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	// Pad out the start of the month.
	d := timeutil.StartDay(then)
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	empty := color.New(color.Faint, color.FgWhite)
	entry := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiGreen)

	now := time.Now()
	for i := 0; i < days; i++ {
		style := empty
		if logged[i] {
			style = entry
		}
		if now.Day() == i+1 && now.Month() == then.Month() && now.Year() == then.Year() {
			style = today
		}
		_, _ = style.Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}
