package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/microposts/internal/client/client"
	"github.com/dmitrijs2005/microposts/internal/client/models"
	"github.com/dmitrijs2005/microposts/internal/common"
)

var errEmptyInput = errors.New("empty input")

// getSimpleText and getPassword are indirections swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) askCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	if userName == "" {
		return "", nil, errEmptyInput
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	if len(password) == 0 {
		return "", nil, errEmptyInput
	}
	return userName, password, nil
}

func (a *App) SignUp(ctx context.Context) error {
	userName, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.authService.SignUp(ctx, userName, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User %s created (id %d)\n", userName, id)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	return nil
}

// Post publishes text, prompting for it when the command had no argument.
func (a *App) Post(ctx context.Context, text string) error {
	if !a.isLoggedIn() {
		return errors.New("log in first")
	}

	if text == "" {
		var err error
		text, err = getSimpleText(a.reader, "Enter post text", a.out)
		if err != nil {
			return err
		}
		if text == "" {
			return errEmptyInput
		}
	}

	post, err := a.postService.Create(ctx, text)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.userName = ""
		}
		return err
	}

	fmt.Fprintf(a.out, "Post #%d published at %s\n", post.ID, post.CreatedAt.Local().Format(time.DateTime))
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.postService.Users(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\n", u.ID, u.UserName)
	}
	return tw.Flush()
}

func (a *App) Posts(ctx context.Context) error {
	posts, err := a.postService.List(ctx)
	if err != nil {
		return err
	}
	return a.printPosts(posts)
}

func (a *App) Recent(ctx context.Context) error {
	posts, err := a.postService.Recent(ctx)
	if err != nil {
		return err
	}
	return a.printPosts(posts)
}

func (a *App) printPosts(posts []models.Post) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tCREATED\tTEXT")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", p.ID, p.UserID, p.CreatedAt.Local().Format(time.DateTime), p.Text)
	}
	return tw.Flush()
}
