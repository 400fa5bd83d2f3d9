package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Client talks to the user through a line-oriented terminal. It is the
// only input and output surface of the tool.
type Client struct {
	in  *bufio.Reader
	out io.Writer
}

func New() *Client {
	return NewWithIO(os.Stdin, os.Stdout)
}

func NewWithIO(in io.Reader, out io.Writer) *Client {
	return &Client{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Client) Print(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	if err != nil {
		return errors.Wrap(err, "console print")
	}
	return nil
}

// Prompt writes the label and reads one trimmed line. Closed input
// surfaces as io.EOF unless the final line carries text.
func (c *Client) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(c.out, label); err != nil {
		return "", errors.Wrap(err, "console prompt")
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", errors.Wrap(err, "console read")
	}
	return strings.TrimSpace(line), nil
}

func (c *Client) Confirm(label string) (bool, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
