// Package menu is the interactive text front end of the store.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AndreWeigel/bestbuy2/internal/service"
	"github.com/AndreWeigel/bestbuy2/internal/store"
)

const (
	optionList  = "1"
	optionTotal = "2"
	optionOrder = "3"
	optionQuit  = "4"
)

type Menu struct {
	storeName string
	catalog   store.Catalog
	checkout  service.CheckoutService
	in        *bufio.Scanner
	out       io.Writer
}

func New(storeName string, catalog store.Catalog, checkout service.CheckoutService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		storeName: storeName,
		catalog:   catalog,
		checkout:  checkout,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops until the user quits or input ends.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Please choose an option: ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case optionList:
			m.printf("\nAvailable products:\n")
			m.listProducts(false)
		case optionTotal:
			m.printf("\nTotal amount of items in store: %d\n", m.catalog.TotalQuantity())
		case optionOrder:
			if err := m.order(); err != nil {
				return err
			}
		case optionQuit:
			m.printf("\nThank you for visiting %s!\n", m.storeName)
			return nil
		default:
			m.printf("\nInvalid option. Please choose again.\n")
		}
	}
}

func (m *Menu) printMenu() {
	m.printf("\n==== Welcome to %s ====\n", m.storeName)
	m.printf("1. List all products in store\n")
	m.printf("2. Show total amount in store\n")
	m.printf("3. Make an order\n")
	m.printf("4. Quit\n")
}

func (m *Menu) listProducts(numbered bool) {
	for i, p := range m.catalog.ActiveProducts() {
		if numbered {
			m.printf("%d. ", i+1)
		}
		m.printf("%s\n", p)
	}
}

func (m *Menu) order() error {
	var lines []store.OrderLine
	for {
		m.printf("\n")
		m.listProducts(true)

		selection, ok := m.prompt("\nEnter product number (or press enter to finish): ")
		if !ok {
			return m.in.Err()
		}
		if selection == "" {
			break
		}

		line, ok := m.readLine(selection)
		if !ok {
			if err := m.in.Err(); err != nil {
				return err
			}
			m.printf("Invalid selection or quantity. Please try again.\n")
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil
	}

	receipt, err := m.checkout.PlaceOrder(lines)
	if err != nil {
		m.printf("Error during order: %v\n", err)
		return nil
	}
	m.printf("\nOrder successful! Total cost: $%s\n", receipt.Total.StringFixed(2))
	return nil
}

func (m *Menu) readLine(selection string) (store.OrderLine, bool) {
	index, err := strconv.Atoi(selection)
	active := m.catalog.ActiveProducts()
	if err != nil || index < 1 || index > len(active) {
		return store.OrderLine{}, false
	}
	product := active[index-1]

	answer, ok := m.prompt(fmt.Sprintf("Enter quantity for %s: ", product.Name()))
	if !ok {
		return store.OrderLine{}, false
	}
	quantity, err := strconv.Atoi(answer)
	if err != nil {
		return store.OrderLine{}, false
	}
	return store.OrderLine{Product: product, Quantity: quantity}, true
}

func (m *Menu) prompt(text string) (string, bool) {
	m.printf("%s", text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
