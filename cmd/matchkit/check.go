package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrymomot/matchkit/pkg/logger"
	"github.com/dmitrymomot/matchkit/pkg/matcher"
)

type checkLine struct {
	Value  string          `json:"value"`
	Valid  bool            `json:"valid"`
	Errors []matcher.Issue `json:"errors"`
}

func runCheck(ctx context.Context, cfg appConfig, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	paramsFlag := fs.String("params", "", "comma-separated matcher params, e.g. 5,2")
	lang := fs.String("lang", cfg.DefaultLang, "language of issue messages")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	params := cfg.MatcherParams
	if *paramsFlag != "" {
		var err error
		if params, err = parseParams(*paramsFlag); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}

	m, err := matcher.NewDecimalNumber(params...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	tr, err := newTranslator(ctx, cfg, logger.NewNop())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	enc := json.NewEncoder(stdout)
	code := exitOK
	check := func(value string) error {
		res := m.MatchString(value)
		line := checkLine{Value: value, Valid: res.Valid(), Errors: []matcher.Issue{}}
		for _, is := range res.Issues() {
			if tr.HasTranslation(*lang, is.Code) {
				is.Message = tr.T(*lang, is.Code)
			}
			line.Errors = append(line.Errors, is)
		}
		if !line.Valid {
			code = exitInvalid
		}
		return enc.Encode(line)
	}

	if fs.NArg() > 0 {
		for _, v := range fs.Args() {
			if err := check(v); err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
		}
		return code
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return exitUsage
		}
		if err := check(strings.TrimRight(sc.Text(), "\r")); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	return code
}

func parseParams(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	params := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid param %q: %w", p, err)
		}
		params = append(params, n)
	}
	return params, nil
}
