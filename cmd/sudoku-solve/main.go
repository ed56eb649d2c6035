package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/hint"
	"svw.info/sudokulogic/internal/logic"
	"svw.info/sudokulogic/internal/solver"
	"svw.info/sudokulogic/internal/usecase"
	"svw.info/sudokulogic/internal/validator"
)

// Exit codes: 0 solved, 2 invalid input, 3 unsolvable, 4 timeout,
// 1 anything else.
const (
	exitInvalid    = 2
	exitUnsolvable = 3
	exitTimeout    = 4
)

func main() {
	puzzleFile := flag.String("f", "", "read the puzzle from a file instead of the argument or stdin")
	timeout := flag.Duration("timeout", 0, "abandon the solve after this long (0 = no limit)")
	strategies := flag.String("strategies", "xwing", "technique cap: none|singles|pairs|advanced|xwing")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	quiet := flag.Bool("quiet", false, "print only the 81-character solution line")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	raw, err := readPuzzle(*puzzleFile, flag.Arg(0))
	if err != nil {
		logger.Error("read puzzle", "err", err)
		os.Exit(1)
	}
	g, err := domain.ParseGrid(raw)
	if err != nil {
		logger.Error("parse puzzle", "err", err)
		os.Exit(exitInvalid)
	}

	var s *solver.LogicSolver
	if strings.ToLower(*strategies) == "none" {
		s = solver.NewBacktrackOnly()
	} else {
		s = solver.New(logic.Techniques(domain.ParseStrategyTier(strings.ToLower(*strategies))))
	}
	uc := usecase.NewService(s, validator.New(), hint.New())

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	logger.Debug("solving", "puzzle", g.Line(), "strategies", *strategies)
	out, st, err := uc.Solve(ctx, g)
	if err != nil {
		logger.Error("solve failed", "err", err,
			"guesses", st.Guesses, "deductions", st.Deductions, "dur", st.Duration.Round(time.Microsecond))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			os.Exit(exitInvalid)
		case errors.Is(err, domain.ErrUnsolvable):
			os.Exit(exitUnsolvable)
		case errors.Is(err, domain.ErrTimeout):
			os.Exit(exitTimeout)
		}
		os.Exit(1)
	}

	if *quiet {
		fmt.Println(out.Line())
	} else {
		fmt.Print(out)
	}
	logger.Info("solved",
		"guesses", st.Guesses,
		"deductions", st.Deductions,
		"dur", st.Duration.Round(time.Microsecond),
	)
}

// readPuzzle takes the puzzle text from -f, the first argument, or stdin,
// in that order.
func readPuzzle(path, arg string) (string, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		return string(raw), err
	}
	if arg != "" {
		return arg, nil
	}
	raw, err := io.ReadAll(io.LimitReader(os.Stdin, 4096))
	return string(raw), err
}
