package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kerbaras/library/pkg/services"
)

// Console is the line-oriented driver: pick a genre, list what is on the
// shelf, optionally borrow and return titles, repeat until "exit".
type Console struct {
	controller *services.LibraryController
	in         *bufio.Scanner
	out        io.Writer
}

func NewConsole(controller *services.LibraryController, in io.Reader, out io.Writer) *Console {
	return &Console{
		controller: controller,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run drives the loop until the user exits or input ends. Domain errors
// are printed and never stop the loop.
func (c *Console) Run() error {
	c.println("Welcome to the Library!")

	for {
		genre, ok := c.prompt("Which genre do you want to view? (type 'exit' to quit): ")
		if !ok || strings.EqualFold(genre, "exit") {
			break
		}

		items := c.controller.Available(genre)
		c.printf("Books in the %s genre:\n", genre)
		if len(items) == 0 {
			c.println("Sorry, no books are available in that genre.")
			continue
		}
		for _, item := range items {
			c.printf(" - %s\n", item)
		}

		title, ok := c.prompt("Which title would you like to borrow? (write 'none' if none): ")
		if !ok {
			break
		}
		if !strings.EqualFold(title, "none") {
			if err := c.controller.Borrow(title); err != nil {
				c.println(err.Error())
			} else {
				c.println("Book borrowed successfully. Enjoy!")
			}
		}

		answer, ok := c.prompt("Return a book? (y/n): ")
		if !ok {
			break
		}
		if strings.EqualFold(answer, "y") {
			title, ok := c.prompt("Enter title to return: ")
			if !ok {
				break
			}
			if err := c.controller.Return(title); err != nil {
				c.println(err.Error())
			} else {
				c.println("Book returned successfully. Thank you!")
			}
		}
	}

	c.println("Thank you for using the Library!")
	return c.in.Err()
}

func (c *Console) prompt(msg string) (string, bool) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
