package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/services"
)

// Register interactively collects the signup form and creates an account.
// A fresh account starts logged in.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	grade, err := GetSimpleText(a.reader, "Grade (e.g. 高校3年)", os.Stdout)
	if err != nil {
		return err
	}
	schools, err := GetList(a.reader, "Target schools (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	subjects, err := GetList(a.reader, "Subjects (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Register(ctx, services.RegisterParams{
		Email:         email,
		Name:          name,
		Grade:         grade,
		TargetSchools: schools,
		Subjects:      subjects,
	}, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Welcome,", u.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Welcome back,", u.Name)
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Profile prints the current user's account, rank progress, and study totals.
func (a *App) Profile(ctx context.Context) error {
	u := a.auth.Current()
	if u == nil {
		printlnFn("Not logged in")
		return common.ErrNoActiveSession
	}

	printlnFn(fmt.Sprintf("%s (%s)", u.Name, u.Grade))
	printlnFn(fmt.Sprintf("Rank: %s (%s)", u.Rank.Name, u.Rank.Level))
	printlnFn(fmt.Sprintf("Points: %dpt", u.Points))

	percent, next, needed := models.RankProgress(u.Points)
	if next != nil {
		printlnFn(fmt.Sprintf("Next rank: %s (%.0f%%, %dpt to go)", next.Name, percent, needed))
	} else {
		printlnFn("Top rank reached")
	}

	stats, err := a.study.Stats(ctx, u.ID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Study time: %dh total, %dh this week", stats.TotalHours(), stats.WeekHours()))
	for subject, minutes := range stats.BySubject {
		printlnFn(fmt.Sprintf("  %s: %dmin", subject, minutes))
	}
	return nil
}
