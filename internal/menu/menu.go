// Package menu implements the interactive text front end: a numbered menu
// read line by line from an io.Reader. It only parses numbers and prints
// results; every rule about products lives in the catalog.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/inventory/internal/cmd/input"
	"github.com/agentstation/inventory/pkg/inventory"
	"github.com/agentstation/inventory/pkg/logging"
)

// Menu choices.
const (
	ChoiceAdd    = "1"
	ChoiceUpdate = "2"
	ChoiceDelete = "3"
	ChoiceList   = "4"
	ChoiceSearch = "5"
	ChoiceExit   = "6"
)

const header = `
--- Menú de Gestión de Inventario ---
1. Agregar producto
2. Actualizar producto
3. Eliminar producto
4. Mostrar inventario
5. Buscar producto
6. Salir
`

// Menu runs the interactive loop against a catalog. A Menu runs once.
type Menu struct {
	catalog *inventory.Catalog
	in      io.Reader
	out     io.Writer

	lines   <-chan string
	readErr error
}

// New returns a menu reading from in and writing to out.
func New(catalog *inventory.Catalog, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog: catalog,
		in:      in,
		out:     out,
	}
}

// Run loops until the user exits or input ends. Canceling ctx abandons any
// prompt still waiting for a line and makes Run return ctx.Err(). Catalog
// failures are printed and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.startReader(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printf("%s", header)
		choice, ok := m.prompt(ctx, "Seleccione una opción: ")
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.println("Saliendo del programa.")
			return m.readErr
		}
		choice = strings.TrimSpace(choice)
		logger.Debug().Str("choice", choice).Msg("Menu choice")

		switch choice {
		case ChoiceAdd:
			m.add(ctx)
		case ChoiceUpdate:
			m.update(ctx)
		case ChoiceDelete:
			m.delete(ctx)
		case ChoiceList:
			if err := m.catalog.Render(m.out); err != nil {
				return err
			}
		case ChoiceSearch:
			m.search(ctx)
		case ChoiceExit:
			m.println("Saliendo del programa.")
			return nil
		default:
			m.println("Opción no válida. Intente nuevamente.")
		}
	}
}

// startReader scans input lines on a goroutine so a prompt can give up on
// ctx while the read is still blocked. The goroutine stops sending once ctx
// is done; a read already blocked on in ends when in is closed.
func (m *Menu) startReader(ctx context.Context) {
	lines := make(chan string)
	m.lines = lines

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(m.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		// Published by the close above.
		m.readErr = scanner.Err()
	}()
}

func (m *Menu) add(ctx context.Context) {
	fields, ok := m.promptAll(ctx, "Nombre del producto: ", "Categoría: ", "Precio: ", "Cantidad: ")
	if !ok {
		return
	}
	name, category, priceText, quantityText := fields[0], fields[1], fields[2], fields[3]

	price, err := input.ParsePrice(priceText)
	if err != nil {
		m.fail(err)
		return
	}
	quantity, err := input.ParseQuantity(quantityText)
	if err != nil {
		m.fail(err)
		return
	}
	product, err := inventory.NewProduct(name, category, price, quantity)
	if err != nil {
		m.fail(err)
		return
	}

	outcome, err := m.catalog.Add(product)
	if err != nil {
		m.fail(err)
		return
	}
	m.println(outcome.Message(name))
}

func (m *Menu) update(ctx context.Context) {
	fields, ok := m.promptAll(ctx,
		"Nombre del producto a actualizar: ",
		"Nuevo precio (dejar en blanco para no cambiar): ",
		"Nueva cantidad (dejar en blanco para no cambiar): ")
	if !ok {
		return
	}
	name, priceText, quantityText := fields[0], fields[1], fields[2]

	price, err := input.ParseOptionalPrice(priceText)
	if err != nil {
		m.fail(err)
		return
	}
	quantity, err := input.ParseOptionalQuantity(quantityText)
	if err != nil {
		m.fail(err)
		return
	}

	outcome, err := m.catalog.Update(name, price, quantity)
	if err != nil {
		m.fail(err)
		return
	}
	m.println(outcome.Message(name))
}

func (m *Menu) delete(ctx context.Context) {
	name, ok := m.prompt(ctx, "Nombre del producto a eliminar: ")
	if !ok {
		return
	}
	outcome, err := m.catalog.Delete(name)
	if err != nil {
		m.fail(err)
		return
	}
	m.println(outcome.Message(name))
}

func (m *Menu) search(ctx context.Context) {
	name, ok := m.prompt(ctx, "Nombre del producto a buscar: ")
	if !ok {
		return
	}
	if p, ok := m.catalog.Find(name); ok {
		m.println("Producto encontrado: " + p.String())
		return
	}
	m.println("Producto no encontrado.")
}

// prompt prints label and waits for one line. ok is false at end of input
// or once ctx is canceled.
func (m *Menu) prompt(ctx context.Context, label string) (string, bool) {
	m.printf("%s", label)
	select {
	case <-ctx.Done():
		m.println("")
		return "", false
	case line, ok := <-m.lines:
		return line, ok
	}
}

// promptAll asks each label in turn and stops at the first missing answer.
func (m *Menu) promptAll(ctx context.Context, labels ...string) ([]string, bool) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, ok := m.prompt(ctx, label)
		if !ok {
			return nil, false
		}
		answers = append(answers, answer)
	}
	return answers, true
}

func (m *Menu) fail(err error) {
	m.println("Error: " + err.Error())
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
