// Package cli is the terminal front end: it renders the feed, users and
// profile "screens" as commands over the controllers. Everything here is
// presentation plumbing; the behavior lives in the usecase packages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	authusecase "feedgram/internal/auth/usecase"
	feeddomain "feedgram/internal/feed/domain"
	feedusecase "feedgram/internal/feed/usecase"
	"feedgram/pkg/feedapi"
)

type App struct {
	client   *feedapi.Client
	auth     authusecase.AuthUsecase
	feed     *feedusecase.PostFeed
	users    *feedusecase.UserDirectory
	mine     *feedusecase.MyPosts
	composer *feedusecase.Composer

	in  *bufio.Scanner
	out io.Writer
}

func New(client *feedapi.Client, auth authusecase.AuthUsecase, feed *feedusecase.PostFeed, users *feedusecase.UserDirectory, mine *feedusecase.MyPosts, composer *feedusecase.Composer, in io.Reader, out io.Writer) *App {
	return &App{
		client:   client,
		auth:     auth,
		feed:     feed,
		users:    users,
		mine:     mine,
		composer: composer,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

func (a *App) Run(ctx context.Context) error {
	// Settle the stored session before showing any prompt, so the first
	// thing the user sees is never the wrong state.
	a.auth.Restore()
	if a.auth.IsAuthenticated() {
		a.printf("Signed in as %s\n", a.auth.CurrentUser().Name)
	} else {
		a.printf("Not signed in. Use: login <email> <password>\n")
	}

	for {
		a.printf("> ")
		if !a.in.Scan() {
			return a.in.Err()
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		a.dispatch(ctx, args[0], args[1:])
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	var err error
	switch cmd {
	case "help":
		a.printHelp()
	case "login":
		err = a.login(ctx, args)
	case "register":
		err = a.register(ctx, args)
	case "logout":
		a.logout()
	case "whoami":
		a.whoami()
	case "feed":
		err = a.showFeed(ctx, a.feed.LoadFirstPage)
	case "refresh":
		err = a.showFeed(ctx, a.feed.Refresh)
	case "more":
		err = a.showFeed(ctx, a.feed.LoadMore)
	case "users":
		err = a.showUsers(ctx, a.users.LoadFirstPage)
	case "users-more":
		err = a.showUsers(ctx, a.users.LoadMore)
	case "user":
		err = a.showUser(ctx, args)
	case "mine":
		err = a.showMine(ctx)
	case "post":
		err = a.createPost(ctx)
	case "delete":
		err = a.deletePost(ctx, args)
	case "health":
		err = a.health(ctx)
	default:
		a.printf("Unknown command %q, try: help\n", cmd)
	}
	if err != nil {
		a.printf("Error: %v\n", err)
	}
}

func (a *App) printHelp() {
	a.printf(`Commands:
  login <email> <password>            sign in
  register <name> <email> <password>  create an account and sign in
  logout                              sign out
  whoami                              show the signed-in user
  feed | refresh | more               browse the post feed
  users | users-more                  browse users
  user <id>                           show one user
  mine                                show your posts
  post                                create a post (prompts for fields)
  delete <post-id>                    delete one of your feed posts
  health                              probe the API
  quit
`)
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	if err := a.auth.SignIn(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printf("Signed in as %s\n", a.auth.CurrentUser().Name)
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: register <name> <email> <password>")
	}
	if err := a.auth.SignUp(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}
	a.printf("Welcome, %s\n", a.auth.CurrentUser().Name)
	return nil
}

func (a *App) logout() {
	if !a.confirm("Sign out?") {
		return
	}
	a.auth.SignOut()
	a.printf("Signed out\n")
}

func (a *App) whoami() {
	user := a.auth.CurrentUser()
	if user == nil {
		a.printf("Not signed in\n")
		return
	}
	a.printf("%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
}

func (a *App) showFeed(ctx context.Context, load func(context.Context) error) error {
	if err := load(ctx); err != nil {
		return err
	}
	posts := a.feed.Items()
	if len(posts) == 0 {
		a.printf("No posts found. Be the first to share something!\n")
		return nil
	}
	for _, post := range posts {
		a.printPost(post)
	}
	a.printf("-- page %d of %d --\n", a.feed.CurrentPage(), a.feed.TotalPages())
	return nil
}

func (a *App) printPost(post feeddomain.Post) {
	marker := ""
	if a.feed.Owns(post) {
		marker = " (yours)"
	}
	a.printf("[%s] user %s%s %s\n    %s\n    %s\n    photo: %s\n",
		post.ID, post.UserID, marker, post.CreatedAt, post.Title, post.Content, post.PhotoURL)
}

func (a *App) showUsers(ctx context.Context, load func(context.Context) error) error {
	if err := load(ctx); err != nil {
		return err
	}
	users := a.users.Items()
	if len(users) == 0 {
		a.printf("No users found\n")
		return nil
	}
	for i, user := range users {
		a.printf("%-24s %s <%s>\n", a.users.Key(i), user.Name, user.Email)
	}
	a.printf("-- page %d of %d --\n", a.users.CurrentPage(), a.users.TotalPages())
	return nil
}

func (a *App) showUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: user <id>")
	}
	user, err := a.users.Lookup(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("%s <%s> member since %s\n", user.Name, user.Email, user.CreatedAt)
	return nil
}

func (a *App) showMine(ctx context.Context) error {
	if err := a.mine.Load(ctx); err != nil {
		return err
	}
	posts := a.mine.Items()
	if len(posts) == 0 {
		a.printf("You have no posts yet\n")
		return nil
	}
	for _, post := range posts {
		a.printf("[%s] %s: %s\n", post.ID, post.Title, post.Content)
	}
	return nil
}

func (a *App) createPost(ctx context.Context) error {
	title := a.prompt("Title: ")
	content := a.prompt("Content: ")
	photo := a.prompt("Photo path: ")
	post, err := a.composer.Submit(ctx, title, content, photo)
	if err != nil {
		return err
	}
	a.printf("Post created: %s\n", post.ID)
	return nil
}

func (a *App) deletePost(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <post-id>")
	}
	var target *feeddomain.Post
	for _, post := range a.feed.Items() {
		if post.ID == args[0] {
			p := post
			target = &p
			break
		}
	}
	if target == nil {
		return fmt.Errorf("post %s is not in the loaded feed", args[0])
	}
	// Ownership first: never ask the user to confirm a delete that will
	// always be refused.
	if !a.feed.Owns(*target) {
		return feedusecase.ErrNotPostOwner
	}
	if !a.confirm("Delete this post?") {
		return nil
	}
	if err := a.feed.DeletePost(ctx, *target); err != nil {
		return err
	}
	a.printf("Post deleted\n")
	return nil
}

func (a *App) health(ctx context.Context) error {
	body, err := a.client.Health(ctx)
	if err != nil {
		return err
	}
	a.printf("%s\n", body)
	return nil
}

func (a *App) prompt(label string) string {
	a.printf("%s", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) confirm(question string) bool {
	answer := a.prompt(question + " [y/N] ")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
