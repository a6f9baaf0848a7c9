// Package shell runs an interactive storefront session over a line-based
// reader/writer pair.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lukman83/latino-market/internal/render"
	"github.com/lukman83/latino-market/internal/storefront"
)

const Prompt = "latinomarket> "

const helpText = `Commands:
  list                 show products matching the current filters
  categories           show categories
  category <name>      filter by category ("Todos" shows everything)
  search [term...]     filter by name or origin; no term clears the search
  add <id>             add a product to the cart
  fav <id>             toggle a product as favorite
  cart                 show cart total and contents
  favorites            show favorite products
  help                 show this help
  quit                 leave the shop
`

var errQuit = errors.New("quit")

type Shell struct {
	sess *storefront.Session
	r    render.Renderer
	out  io.Writer
}

func New(sess *storefront.Session, r render.Renderer, out io.Writer) *Shell {
	return &Shell{sess: sess, r: r, out: out}
}

// Run reads commands from in until EOF, quit or ctx is done.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	fmt.Fprint(sh.out, Prompt)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			err := sh.Exec(line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(sh.out, "error: %v\n", err)
			}
			fmt.Fprint(sh.out, Prompt)
		}
	}
}

// Exec runs a single command line.
func (sh *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		_, err := io.WriteString(sh.out, helpText)
		return err
	case "quit", "exit":
		return errQuit
	case "list":
		v := sh.sess.View()
		return sh.r.Products(sh.out, v.Products, v.Favorites)
	case "categories":
		return sh.r.Categories(sh.out, render.CountByCategory(sh.sess.State().Catalog))
	case "category":
		if len(args) == 0 {
			return errors.New("usage: category <name>")
		}
		if _, err := sh.sess.SelectCategory(strings.Join(args, " ")); err != nil {
			return err
		}
		v := sh.sess.View()
		return sh.r.Products(sh.out, v.Products, v.Favorites)
	case "search":
		sh.sess.Search(strings.Join(args, " "))
		v := sh.sess.View()
		return sh.r.Products(sh.out, v.Products, v.Favorites)
	case "add":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		p, err := sh.sess.AddToCart(id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(sh.out, "%s añadido al carrito\n", p.Name)
		return err
	case "fav":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		fav, err := sh.sess.ToggleFavorite(id)
		if err != nil {
			return err
		}
		state := "removed from"
		if fav {
			state = "added to"
		}
		_, err = fmt.Fprintf(sh.out, "#%d %s favorites\n", id, state)
		return err
	case "cart":
		return sh.r.Summary(sh.out, sh.sess.View())
	case "favorites":
		st := sh.sess.State()
		return sh.r.Products(sh.out, st.FavoriteProducts(), st.Favorites)
	default:
		return fmt.Errorf("unknown command %q, type help", cmd)
	}
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one product id")
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", args[0])
	}
	return id, nil
}
