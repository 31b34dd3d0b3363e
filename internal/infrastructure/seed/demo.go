// Package seed contiene los datos de demostración con los que arranca el dashboard.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// DemoUser usuario de demostración. Secret solo se usa para calcular el hash bcrypt al construir el directorio.
type DemoUser struct {
	Identity entity.Identity
	Secret   string
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Users cuentas de demostración, una por rol.
func Users() []DemoUser {
	return []DemoUser{
		{Identity: entity.Identity{ID: "USR001", Name: "Admin User", Email: "admin@example.com", Role: entity.RoleAdmin}, Secret: "admin123"},
		{Identity: entity.Identity{ID: "USR002", Name: "Manager User", Email: "manager@example.com", Role: entity.RoleManager}, Secret: "manager123"},
		{Identity: entity.Identity{ID: "USR003", Name: "Employee User", Email: "employee@example.com", Role: entity.RoleEmployee}, Secret: "employee123"},
	}
}

// InventoryItems artículos iniciales INV001..INV006.
func InventoryItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "INV001", Name: "Laptop", Category: "Electronics", SKU: "ELEC-LAP-001", CostPrice: d("45000"), SellingPrice: d("55000"), Stock: 15, ReorderLevel: 5, Barcode: "784283947284", LastUpdated: "2023-04-15"},
		{ID: "INV002", Name: "T-Shirt", Category: "Clothing", SKU: "CLO-TSH-001", CostPrice: d("250"), SellingPrice: d("499"), Stock: 50, ReorderLevel: 10, Barcode: "784283947285", LastUpdated: "2023-04-14"},
		{ID: "INV003", Name: "Coffee Beans", Category: "Food & Beverages", SKU: "FB-COF-001", CostPrice: d("400"), SellingPrice: d("650"), Stock: 30, ReorderLevel: 8, Barcode: "784283947286", LastUpdated: "2023-04-13"},
		{ID: "INV004", Name: "Notebook", Category: "Stationery", SKU: "STA-NB-001", CostPrice: d("50"), SellingPrice: d("120"), Stock: 100, ReorderLevel: 20, Barcode: "784283947287", LastUpdated: "2023-04-12"},
		{ID: "INV005", Name: "Office Chair", Category: "Furniture", SKU: "FUR-CHR-001", CostPrice: d("3500"), SellingPrice: d("5999"), Stock: 8, ReorderLevel: 3, Barcode: "784283947288", LastUpdated: "2023-04-11"},
		{ID: "INV006", Name: "Microwave Oven", Category: "Kitchen Appliances", SKU: "KIT-MWO-001", CostPrice: d("6000"), SellingPrice: d("8999"), Stock: 12, ReorderLevel: 4, Barcode: "784283947289", LastUpdated: "2023-04-10"},
	}
}

// Customers clientes CUST001..CUST003.
func Customers() []entity.Customer {
	return []entity.Customer{
		{ID: "CUST001", Name: "John Doe", Email: "john@example.com", Phone: "9876543210", Address: "123 Main St, Anytown", TotalPurchases: d("24500"), LastPurchase: "2023-04-10"},
		{ID: "CUST002", Name: "Jane Smith", Email: "jane@example.com", Phone: "9876543211", Address: "456 Oak St, Anytown", TotalPurchases: d("15700"), LastPurchase: "2023-04-05"},
		{ID: "CUST003", Name: "Bob Johnson", Email: "bob@example.com", Phone: "9876543212", Address: "789 Pine St, Anytown", TotalPurchases: d("32000"), LastPurchase: "2023-04-08"},
	}
}

// Invoices facturas INV2023001..INV2023003.
func Invoices() []entity.Invoice {
	return []entity.Invoice{
		{
			ID: "INV2023001", CustomerID: "CUST001", CustomerName: "John Doe", Date: "2023-04-10",
			Items: []entity.InvoiceLine{
				{ID: "INV001", Name: "Laptop", Quantity: 1, Price: d("55000")},
				{ID: "INV004", Name: "Notebook", Quantity: 2, Price: d("120")},
			},
			Subtotal: d("55240"), Tax: d("9943.2"), Discount: d("500"), Total: d("64683.2"),
			Status: entity.InvoicePaid, PaymentMethod: "Credit Card",
		},
		{
			ID: "INV2023002", CustomerID: "CUST002", CustomerName: "Jane Smith", Date: "2023-04-05",
			Items: []entity.InvoiceLine{
				{ID: "INV002", Name: "T-Shirt", Quantity: 3, Price: d("499")},
				{ID: "INV003", Name: "Coffee Beans", Quantity: 2, Price: d("650")},
			},
			Subtotal: d("2797"), Tax: d("503.46"), Discount: d("100"), Total: d("3200.46"),
			Status: entity.InvoicePaid, PaymentMethod: "Cash",
		},
		{
			ID: "INV2023003", CustomerID: "CUST003", CustomerName: "Bob Johnson", Date: "2023-04-08",
			Items: []entity.InvoiceLine{
				{ID: "INV005", Name: "Office Chair", Quantity: 1, Price: d("5999")},
				{ID: "INV006", Name: "Microwave Oven", Quantity: 1, Price: d("8999")},
			},
			Subtotal: d("14998"), Tax: d("2699.64"), Discount: d("1000"), Total: d("16697.64"),
			Status: entity.InvoicePending, PaymentMethod: "Bank Transfer",
		},
	}
}
