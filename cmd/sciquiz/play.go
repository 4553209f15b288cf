package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	sessiondto "sciquiz/internal/modules/session/dto"
	"sciquiz/internal/platform/clock"
	apperrors "sciquiz/internal/platform/errors"
)

type playPort interface {
	Start(ctx context.Context, subject, difficulty string, total int) (sessiondto.StatusOutput, error)
	Answer(ctx context.Context, choice string) (sessiondto.AnswerOutput, error)
	Timeout(ctx context.Context) (sessiondto.AnswerOutput, error)
	Continue(ctx context.Context) (sessiondto.StatusOutput, error)
	Abort(ctx context.Context) error
	Results(ctx context.Context) (sessiondto.ResultOutput, error)
}

// runPlain plays one session on a line-oriented terminal. There is no live
// countdown: an answer typed after the time limit counts as a timeout.
func runPlain(ctx context.Context, h playPort, clk clock.Clock, in io.Reader, out io.Writer, subject, difficulty string, total int) error {
	status, err := h.Start(ctx, subject, difficulty, total)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "%s · %s · %d questions · %ds per question\n",
		strings.ToUpper(status.Subject), status.Difficulty, status.Total, status.TimeLimit)

	lines := bufio.NewScanner(in)
	for status.Phase == "question" {
		printQuestion(out, status)
		answer, err := readAnswer(ctx, h, clk, lines, out, status.TimeLimit)
		if err != nil {
			return err
		}
		printFeedback(out, answer)

		status, err = h.Continue(ctx)
		if err != nil {
			return err
		}
	}

	result, err := h.Results(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "\nFINISHED\nScore: %d/%d (%.0f%%) %s in %s\n",
		result.Score, result.Total, result.Percent, result.Grade, result.Duration.Round(time.Second))
	return nil
}

func readAnswer(ctx context.Context, h playPort, clk clock.Clock, lines *bufio.Scanner, out io.Writer, limit int) (sessiondto.AnswerOutput, error) {
	budget := time.Duration(limit) * time.Second
	watch := clock.StartStopwatch(clk)
	for {
		_, _ = fmt.Fprint(out, "> ")
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				_ = h.Abort(ctx)
				return sessiondto.AnswerOutput{}, fmt.Errorf("read answer: %w", err)
			}
			_ = h.Abort(ctx)
			return sessiondto.AnswerOutput{}, errors.New("quiz aborted: input closed")
		}
		if watch.Elapsed() > budget {
			return h.Timeout(ctx)
		}
		choice := strings.ToUpper(strings.TrimSpace(lines.Text()))
		if choice == "" {
			continue
		}
		answer, err := h.Answer(ctx, choice)
		if errors.Is(err, apperrors.ErrInvalidInput) {
			_, _ = fmt.Fprintln(out, "choose A, B, C or D")
			continue
		}
		return answer, err
	}
}

func printQuestion(out io.Writer, status sessiondto.StatusOutput) {
	_, _ = fmt.Fprintf(out, "\nQuestion %d/%d  (score %d)\n%s\n",
		status.Question.Number, status.Total, status.Score, status.Question.Prompt)
	for _, opt := range status.Question.Options {
		_, _ = fmt.Fprintf(out, "  %s) %s\n", opt.Label, opt.Text)
	}
}

func printFeedback(out io.Writer, answer sessiondto.AnswerOutput) {
	switch answer.Outcome {
	case "correct":
		_, _ = fmt.Fprintln(out, "CORRECT!")
	case "timeout":
		_, _ = fmt.Fprintf(out, "TIME'S UP!\nAnswer: %s) %s\n", answer.CorrectLabel, answer.CorrectAnswer)
	default:
		_, _ = fmt.Fprintf(out, "WRONG\nAnswer: %s) %s\n", answer.CorrectLabel, answer.CorrectAnswer)
	}
}
