package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

type itemsCmd struct {
	env      *Env
	text     string
	category string
	stock    string
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "listar artículos del inventario" }
func (*itemsCmd) Usage() string {
	return `nexusctl items [-q <texto>] [-category <categoría>] [-stock all|low|out]

  Los filtros se combinan: el texto busca en nombre, SKU y código de barras.
`
}

func (p *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.text, "q", "", "Texto a buscar en nombre, SKU o código de barras.")
	f.StringVar(&p.category, "category", filter.All, "Categoría exacta o 'all'.")
	f.StringVar(&p.stock, "stock", filter.All, "Nivel de stock: all, low u out.")
}

func (p *itemsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.env.authorize(policy.ViewInventory) {
		return subcommands.ExitFailure
	}
	level, err := filter.ParseStockLevel(p.stock)
	if err != nil {
		return p.env.fail(err)
	}
	items, err := p.env.Inventory.List(ctx, filter.InventoryQuery{Text: p.text, Category: p.category, Stock: level})
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(ItemsMarkdown(items, p.env.Currency))
}

// itemFlags campos editables de un artículo. Solo los flags presentes en la línea de comandos
// se envían al caso de uso.
type itemFlags struct {
	name, category, sku, barcode string
	cost, price, stock, reorder  string
}

func (fl *itemFlags) register(f *flag.FlagSet) {
	f.StringVar(&fl.name, "name", "", "Nombre del artículo.")
	f.StringVar(&fl.category, "category", "", "Categoría (ver 'nexusctl items').")
	f.StringVar(&fl.sku, "sku", "", "SKU.")
	f.StringVar(&fl.barcode, "barcode", "", "Código de barras.")
	f.StringVar(&fl.cost, "cost", "", "Precio de costo.")
	f.StringVar(&fl.price, "price", "", "Precio de venta.")
	f.StringVar(&fl.stock, "stock", "", "Existencias (entero >= 0).")
	f.StringVar(&fl.reorder, "reorder", "", "Nivel de reorden (entero >= 0).")
}

func (fl *itemFlags) input(f *flag.FlagSet) (dto.InventoryItemInput, error) {
	var (
		in  dto.InventoryItemInput
		err error
	)
	f.Visit(func(fg *flag.Flag) {
		if err != nil {
			return
		}
		switch fg.Name {
		case "name":
			in.Name = &fl.name
		case "category":
			in.Category = &fl.category
		case "sku":
			in.SKU = &fl.sku
		case "barcode":
			in.Barcode = &fl.barcode
		case "cost":
			in.CostPrice, err = parseDecimal("costPrice", fl.cost)
		case "price":
			in.SellingPrice, err = parseDecimal("sellingPrice", fl.price)
		case "stock":
			in.Stock, err = parseInt("stock", fl.stock)
		case "reorder":
			in.ReorderLevel, err = parseInt("reorderLevel", fl.reorder)
		}
	})
	return in, err
}

func parseDecimal(field, s string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, domain.NewFieldError(field, "debe ser un número")
	}
	return &d, nil
}

func parseInt(field, s string) (*int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, domain.NewFieldError(field, "debe ser un entero")
	}
	return &n, nil
}

type itemAddCmd struct {
	env *Env
	itemFlags
}

func (*itemAddCmd) Name() string     { return "item-add" }
func (*itemAddCmd) Synopsis() string { return "crear un artículo" }
func (*itemAddCmd) Usage() string {
	return `nexusctl item-add -name <nombre> [-category <c>] [-sku <s>] [-cost <n>] [-price <n>] [-stock <n>] [-reorder <n>] [-barcode <b>]

  Los campos omitidos quedan vacíos o en cero. Requiere rol manager.
`
}

func (p *itemAddCmd) SetFlags(f *flag.FlagSet) { p.register(f) }

func (p *itemAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.env.authorize(policy.EditInventory) {
		return subcommands.ExitFailure
	}
	in, err := p.input(f)
	if err != nil {
		return p.env.fail(err)
	}
	item, err := p.env.Inventory.Create(ctx, in)
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(ItemMarkdown(item, p.env.Currency))
}

type itemEditCmd struct {
	env *Env
	itemFlags
}

func (*itemEditCmd) Name() string     { return "item-edit" }
func (*itemEditCmd) Synopsis() string { return "modificar campos de un artículo" }
func (*itemEditCmd) Usage() string {
	return `nexusctl item-edit [flags] <id>

  Solo cambian los campos indicados por flag. Requiere rol manager.
`
}

func (p *itemEditCmd) SetFlags(f *flag.FlagSet) { p.register(f) }

func (p *itemEditCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(p.env.Err, p.Usage())
		return subcommands.ExitUsageError
	}
	if !p.env.authorize(policy.EditInventory) {
		return subcommands.ExitFailure
	}
	in, err := p.input(f)
	if err != nil {
		return p.env.fail(err)
	}
	item, err := p.env.Inventory.Update(ctx, f.Arg(0), in)
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(ItemMarkdown(item, p.env.Currency))
}

type itemRmCmd struct{ env *Env }

func (*itemRmCmd) Name() string             { return "item-rm" }
func (*itemRmCmd) Synopsis() string         { return "eliminar un artículo" }
func (*itemRmCmd) Usage() string            { return "nexusctl item-rm <id>\n\n  Requiere rol admin.\n" }
func (*itemRmCmd) SetFlags(_ *flag.FlagSet) {}

func (p *itemRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(p.env.Err, p.Usage())
		return subcommands.ExitUsageError
	}
	if !p.env.authorize(policy.DeleteInventory) {
		return subcommands.ExitFailure
	}
	if err := p.env.Inventory.Delete(ctx, f.Arg(0)); err != nil {
		return p.env.fail(err)
	}
	return p.env.print(fmt.Sprintf("Artículo %s eliminado.", f.Arg(0)))
}

type reorderCmd struct{ env *Env }

func (*reorderCmd) Name() string             { return "reorder" }
func (*reorderCmd) Synopsis() string         { return "sugerencias de reposición del stock bajo" }
func (*reorderCmd) Usage() string            { return "nexusctl reorder\n" }
func (*reorderCmd) SetFlags(_ *flag.FlagSet) {}

func (p *reorderCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.env.authorize(policy.ViewInventory) {
		return subcommands.ExitFailure
	}
	sugg, err := p.env.Inventory.ReorderSuggestions(ctx)
	if err != nil {
		return p.env.fail(err)
	}
	return p.env.print(ReorderMarkdown(sugg, p.env.Currency))
}
