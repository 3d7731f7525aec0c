package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mizusawa-dev/studyshare/internal/common"
)

// Timer runs one study session: it starts the clock, waits for the user to
// press Enter, records the session, and awards the per-minute study reward.
func (a *App) Timer(ctx context.Context) error {
	u := a.auth.Current()
	if u == nil {
		printlnFn("Not logged in")
		return common.ErrNoActiveSession
	}

	subject, err := GetSimpleText(a.reader, "Subject", os.Stdout)
	if err != nil {
		return err
	}

	start := a.now()
	printlnFn("Timer started. Press Enter to stop.")
	if _, err := a.reader.ReadString('\n'); err != nil {
		return err
	}
	end := a.now()

	session, err := a.study.Record(ctx, *u, subject, start, end)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Studied %s for %dmin", subject, session.Duration))

	reward := session.Duration * a.config.StudyRewardPerMinute
	if reward <= 0 {
		return nil
	}
	updated, err := a.auth.AwardPoints(ctx, reward, "study session")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("+%dpt (now %dpt)", reward, updated.Points))
	return nil
}
