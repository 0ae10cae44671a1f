package drill

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/mdftrainer/internal/scenario"
)

// RunConsole drills over a plain line-oriented stream. It asks up to rounds
// scenarios (unlimited when rounds <= 0) and stops early on EOF or "q".
func RunConsole(ctx context.Context, s *Session, in io.Reader, out io.Writer, rounds int) error {
	scanner := bufio.NewScanner(in)
	asked := 0

	defer printSummary(out, s)

	for rounds <= 0 || asked < rounds {
		if err := ctx.Err(); err != nil {
			return err
		}

		sc := s.Next()
		asked++
		fmt.Fprintf(out, "\n[%d] Pot: %.2f  Bet: %.2f (%d%% pot)\n", asked, sc.Pot, sc.Bet, sc.BetSizePercent)

		for {
			fmt.Fprintf(out, "%s (in %%) > ", sc.Question())
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}

			line := strings.TrimSpace(scanner.Text())
			if isQuit(line) {
				return nil
			}

			result, err := s.Submit(ctx, line)
			if errors.Is(err, scenario.ErrInvalidAnswer) {
				fmt.Fprintln(out, "Please enter a valid number")
				continue
			}
			if errors.Is(err, ErrNoScenario) {
				return err
			}

			fmt.Fprintln(out, result.Feedback())
			if err != nil {
				// judged but not persisted
				fmt.Fprintf(out, "Score not saved: %v\n", err)
			}
			break
		}
	}
	return nil
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

func printSummary(out io.Writer, s *Session) {
	sc := s.Score()
	_, best := s.Streak()
	fmt.Fprintf(out, "\nPot Odds: %s\n", sc.PotOdds)
	fmt.Fprintf(out, "MDF:      %s\n", sc.MDF)
	fmt.Fprintf(out, "Best streak this session: %d\n", best)
}
