// Package menu implements the interactive report loop: a main menu for
// choosing a report period and a post-report menu for writing the result to a
// file or starting over. Input is read synchronously and invalid selections
// re-prompt.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jlehtonen/kwhreport/internal/report"
	"github.com/jlehtonen/kwhreport/pkg/models"
)

// Runner drives the interactive report session. In and Out are injectable so
// the loop can be scripted in tests; the report command wires stdin/stdout.
type Runner struct {
	In         io.Reader
	Out        io.Writer
	Data       []models.Measurement
	Year       int
	ReportPath string

	scanner *bufio.Scanner
}

// Run loops until the user selects exit from either menu.
func (r *Runner) Run() error {
	r.scanner = bufio.NewScanner(r.In)

	for {
		choice, err := r.mainMenu()
		if err != nil {
			return err
		}

		var lines []string
		switch choice {
		case "1":
			lines, err = r.rangeReport()
			if err != nil {
				return err
			}
		case "2":
			lines, err = r.monthReport()
			if err != nil {
				return err
			}
		case "3":
			lines = report.YearReport(r.Data, r.Year)
		case "4":
			return nil
		default:
			fmt.Fprintln(r.Out, "Invalid selection. Try again.")
			continue
		}

		for _, line := range lines {
			fmt.Fprintln(r.Out, line)
		}

		again, err := r.postMenu(lines)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (r *Runner) mainMenu() (string, error) {
	fmt.Fprintln(r.Out, "Choose a report type:")
	fmt.Fprintln(r.Out, "1) Daily summary for a date range")
	fmt.Fprintln(r.Out, "2) Monthly summary for one month")
	fmt.Fprintf(r.Out, "3) Full year %d summary\n", r.Year)
	fmt.Fprintln(r.Out, "4) Exit the program")
	return r.prompt("Select: ")
}

func (r *Runner) rangeReport() ([]string, error) {
	start, err := r.promptDate("Enter start date (dd.mm.yyyy): ")
	if err != nil {
		return nil, err
	}
	end, err := r.promptDate("Enter end date (dd.mm.yyyy): ")
	if err != nil {
		return nil, err
	}
	for end.Before(start) {
		fmt.Fprintln(r.Out, "End date must be on or after start date.")
		end, err = r.promptDate("Enter end date (dd.mm.yyyy): ")
		if err != nil {
			return nil, err
		}
	}
	return report.RangeReport(r.Data, start, end), nil
}

func (r *Runner) monthReport() ([]string, error) {
	month, err := r.promptMonth("Enter month number (1-12): ")
	if err != nil {
		return nil, err
	}
	return report.MonthReport(r.Data, month), nil
}

// postMenu returns true when the user wants to build another report.
func (r *Runner) postMenu(lines []string) (bool, error) {
	for {
		fmt.Fprintln(r.Out, "What would you like to do next?")
		fmt.Fprintf(r.Out, "1) Write the report to the file %s\n", r.ReportPath)
		fmt.Fprintln(r.Out, "2) Create a new report")
		fmt.Fprintln(r.Out, "3) Exit")
		choice, err := r.prompt("Select: ")
		if err != nil {
			return false, err
		}
		switch choice {
		case "1":
			if err := writeReport(r.ReportPath, lines); err != nil {
				return false, err
			}
		case "2":
			return true, nil
		case "3":
			return false, nil
		default:
			fmt.Fprintln(r.Out, "Invalid selection. Try again.")
		}
	}
}

func (r *Runner) prompt(label string) (string, error) {
	fmt.Fprint(r.Out, label)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("unexpected end of input")
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

func (r *Runner) promptDate(label string) (time.Time, error) {
	for {
		raw, err := r.prompt(label)
		if err != nil {
			return time.Time{}, err
		}
		if t, err := time.Parse("2.1.2006", raw); err == nil {
			return t, nil
		}
		fmt.Fprintln(r.Out, "Invalid date format. Use dd.mm.yyyy.")
	}
}

func (r *Runner) promptMonth(label string) (time.Month, error) {
	for {
		raw, err := r.prompt(label)
		if err != nil {
			return 0, err
		}
		month, err := strconv.Atoi(raw)
		if err == nil && month >= 1 && month <= 12 {
			return time.Month(month), nil
		}
		fmt.Fprintln(r.Out, "Invalid month. Enter a number from 1 to 12.")
	}
}

func writeReport(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
