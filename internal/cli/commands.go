package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avasiljevs/gpavault/internal/models"
	"github.com/avasiljevs/gpavault/internal/services"
)

// Register prompts for new credentials and creates the account. Per the
// original flow the user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.SignUp(ctx, username, password, confirm); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login prompts for credentials and stores the session token on success.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	token, err := a.auth.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.token = token
	a.userName = username
	fmt.Fprintf(a.out, "Welcome, %s!\n", username)
	return nil
}

// Save prompts for the snapshot fields and appends a record.
func (a *App) Save(ctx context.Context) error {
	semesterNum, err := GetInt(a.reader, "Number of marking periods", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	unweighted, err := GetFloat(a.reader, "Unweighted GPA", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	weighted, err := GetFloat(a.reader, "Weighted GPA", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	pdfLink, err := GetSimpleText(a.reader, "Transcript link (optional)", a.out)
	if err != nil {
		return err
	}

	input := services.RecordInput{
		SemesterNum:   semesterNum,
		UnweightedGPA: unweighted,
		WeightedGPA:   weighted,
		PDFLink:       pdfLink,
	}
	if err := a.records.Save(ctx, a.token, input); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Saved.")
	return nil
}

// List prints the user's records, newest first.
func (a *App) List(ctx context.Context) error {
	items, err := a.records.List(ctx, a.token)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	sortRecordsNewestFirst(items)

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No saved data.")
		return nil
	}
	for _, item := range items {
		ts, _ := item.SavedTime()
		fmt.Fprintf(a.out, "[%d] %s  periods=%d  unweighted=%.2f  weighted=%.2f  %s\n",
			item.ID, ts.Format(time.DateOnly), item.SemesterNum,
			item.UnweightedGPA, item.WeightedGPA, item.PDFLink)
	}
	return nil
}

// Delete prompts for a record id and removes it.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter record id to delete", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.records.Delete(ctx, a.token, int64(id)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// DeleteAll removes every record of the logged-in user.
func (a *App) DeleteAll(ctx context.Context) error {
	if err := a.records.DeleteAll(ctx, a.token); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "All saved data deleted.")
	return nil
}

// Logout ends the session and clears the shell's login state.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx, a.token)
	a.token = ""
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// sortRecordsNewestFirst orders records by saved date descending, the order
// the original page displayed them in. Records are already validated by the
// listing, so the parse cannot fail here.
func sortRecordsNewestFirst(items []models.Record) {
	sort.Slice(items, func(i, j int) bool {
		ti, _ := items[i].SavedTime()
		tj, _ := items[j].SavedTime()
		return ti.After(tj)
	})
}
