package db

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/pointers"
)

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func daysAgo(n int) *time.Time {
	t := time.Now().AddDate(0, 0, -n)
	return &t
}

// Seed installs the canonical demo dataset. Idempotent: a store that
// already has customers is left untouched.
func Seed(db *gorm.DB) error {
	var customers int64
	if err := db.Model(&domain.Customer{}).Count(&customers).Error; err != nil {
		return err
	}
	if customers > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := []domain.Category{
			{CategoryName: "Beverages", Description: pointers.String("Soft drinks, coffees, teas, beers, and ales")},
			{CategoryName: "Condiments", Description: pointers.String("Sweet and savory sauces, relishes, spreads, and seasonings")},
			{CategoryName: "Confections", Description: pointers.String("Desserts, candies, and sweet breads")},
			{CategoryName: "Dairy Products", Description: pointers.String("Cheeses")},
			{CategoryName: "Grains/Cereals", Description: pointers.String("Breads, crackers, pasta, and cereal")},
			{CategoryName: "Meat/Poultry", Description: pointers.String("Prepared meats")},
			{CategoryName: "Produce", Description: pointers.String("Dried fruit and bean curd")},
			{CategoryName: "Seafood", Description: pointers.String("Seaweed and fish")},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		suppliers := []domain.Supplier{
			{CompanyName: "Exotic Liquids", ContactName: pointers.String("Charlotte Cooper"), City: pointers.String("London"), Country: pointers.String("UK"), Phone: pointers.String("(171) 555-2222")},
			{CompanyName: "New Orleans Cajun Delights", ContactName: pointers.String("Shelley Burke"), City: pointers.String("New Orleans"), Country: pointers.String("USA"), Phone: pointers.String("(100) 555-4822")},
			{CompanyName: "Grandma Kelly's Homestead", ContactName: pointers.String("Regina Murphy"), City: pointers.String("Ann Arbor"), Country: pointers.String("USA"), Phone: pointers.String("(313) 555-5735")},
			{CompanyName: "Tokyo Traders", ContactName: pointers.String("Yoshi Nagase"), City: pointers.String("Tokyo"), Country: pointers.String("Japan"), Phone: pointers.String("(03) 3555-5011")},
			{CompanyName: "Cooperativa de Quesos", ContactName: pointers.String("Antonio del Valle Saavedra"), City: pointers.String("Oviedo"), Country: pointers.String("Spain"), Phone: pointers.String("(98) 598 76 54")},
		}
		if err := tx.Create(&suppliers).Error; err != nil {
			return err
		}

		products := []domain.Product{
			{ProductName: "Chai", CategoryID: pointers.Int(1), SupplierID: pointers.Int(1), UnitPrice: money("18.00"), UnitsInStock: pointers.Int(39), ReorderLevel: pointers.Int(10)},
			{ProductName: "Chang", CategoryID: pointers.Int(1), SupplierID: pointers.Int(1), UnitPrice: money("19.00"), UnitsInStock: pointers.Int(17), ReorderLevel: pointers.Int(25)},
			{ProductName: "Aniseed Syrup", CategoryID: pointers.Int(2), SupplierID: pointers.Int(1), UnitPrice: money("10.00"), UnitsInStock: pointers.Int(13), ReorderLevel: pointers.Int(25)},
			{ProductName: "Chef Anton's Cajun Seasoning", CategoryID: pointers.Int(2), SupplierID: pointers.Int(2), UnitPrice: money("22.00"), UnitsInStock: pointers.Int(53), ReorderLevel: pointers.Int(0)},
			{ProductName: "Gumbo Mix", CategoryID: pointers.Int(2), SupplierID: pointers.Int(2), UnitPrice: money("21.35"), UnitsInStock: pointers.Int(0), ReorderLevel: pointers.Int(0), Discontinued: true},
			{ProductName: "Grandma's Boysenberry Spread", CategoryID: pointers.Int(2), SupplierID: pointers.Int(3), UnitPrice: money("25.00"), UnitsInStock: pointers.Int(120), ReorderLevel: pointers.Int(25)},
			{ProductName: "Uncle Bob's Organic Dried Pears", CategoryID: pointers.Int(7), SupplierID: pointers.Int(3), UnitPrice: money("30.00"), UnitsInStock: pointers.Int(15), ReorderLevel: pointers.Int(10)},
			{ProductName: "Northwoods Cranberry Sauce", CategoryID: pointers.Int(2), SupplierID: pointers.Int(3), UnitPrice: money("40.00"), UnitsInStock: pointers.Int(6), ReorderLevel: pointers.Int(0)},
			{ProductName: "Mishi Kobe Niku", CategoryID: pointers.Int(6), SupplierID: pointers.Int(4), UnitPrice: money("97.00"), UnitsInStock: pointers.Int(29), ReorderLevel: pointers.Int(0)},
			{ProductName: "Ikura", CategoryID: pointers.Int(8), SupplierID: pointers.Int(4), UnitPrice: money("31.00"), UnitsInStock: pointers.Int(31), ReorderLevel: pointers.Int(0)},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		customers := []domain.Customer{
			{CompanyName: "Alfreds Futterkiste", ContactName: pointers.String("Maria Anders"), City: pointers.String("Berlin"), Country: pointers.String("Germany"), Phone: pointers.String("030-0074321")},
			{CompanyName: "Ana Trujillo Emparedados", ContactName: pointers.String("Ana Trujillo"), City: pointers.String("México D.F."), Country: pointers.String("Mexico"), Phone: pointers.String("(5) 555-4729")},
			{CompanyName: "Antonio Moreno Taquería", ContactName: pointers.String("Antonio Moreno"), City: pointers.String("México D.F."), Country: pointers.String("Mexico"), Phone: pointers.String("(5) 555-3932")},
			{CompanyName: "Around the Horn", ContactName: pointers.String("Thomas Hardy"), City: pointers.String("London"), Country: pointers.String("UK"), Phone: pointers.String("(171) 555-7788")},
			{CompanyName: "Berglunds snabbköp", ContactName: pointers.String("Christina Berglund"), City: pointers.String("Luleå"), Country: pointers.String("Sweden"), Phone: pointers.String("0921-12 34 65")},
			{CompanyName: "Blauer See Delikatessen", ContactName: pointers.String("Hanna Moos"), City: pointers.String("Mannheim"), Country: pointers.String("Germany"), Phone: pointers.String("0621-08460")},
			{CompanyName: "Blondel père et fils", ContactName: pointers.String("Frédérique Citeaux"), City: pointers.String("Strasbourg"), Country: pointers.String("France"), Phone: pointers.String("88.60.15.31")},
			{CompanyName: "Bólido Comidas preparadas", ContactName: pointers.String("Martín Sommer"), City: pointers.String("Madrid"), Country: pointers.String("Spain"), Phone: pointers.String("(91) 555 22 82")},
			{CompanyName: "Bon app'", ContactName: pointers.String("Laurence Lebihan"), City: pointers.String("Marseille"), Country: pointers.String("France"), Phone: pointers.String("91.24.45.40")},
			{CompanyName: "Bottom-Dollar Markets", ContactName: pointers.String("Elizabeth Lincoln"), City: pointers.String("Tsawassen"), Country: pointers.String("Canada"), Phone: pointers.String("(604) 555-4729")},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		employees := []domain.Employee{
			{FirstName: "Nancy", LastName: "Davolio", Title: pointers.String("Sales Representative"), HireDate: date(1992, time.May, 1), City: pointers.String("Seattle"), Country: pointers.String("USA")},
			{FirstName: "Andrew", LastName: "Fuller", Title: pointers.String("Vice President, Sales"), HireDate: date(1992, time.August, 14), City: pointers.String("Tacoma"), Country: pointers.String("USA")},
			{FirstName: "Janet", LastName: "Leverling", Title: pointers.String("Sales Representative"), HireDate: date(1992, time.April, 1), City: pointers.String("Kirkland"), Country: pointers.String("USA"), ReportsTo: pointers.Int(2)},
			{FirstName: "Margaret", LastName: "Peacock", Title: pointers.String("Sales Representative"), HireDate: date(1993, time.May, 3), City: pointers.String("Redmond"), Country: pointers.String("USA"), ReportsTo: pointers.Int(2)},
			{FirstName: "Steven", LastName: "Buchanan", Title: pointers.String("Sales Manager"), HireDate: date(1993, time.October, 17), City: pointers.String("London"), Country: pointers.String("UK"), ReportsTo: pointers.Int(2)},
		}
		if err := tx.Create(&employees).Error; err != nil {
			return err
		}

		shippers := []domain.Shipper{
			{CompanyName: "Speedy Express", Phone: pointers.String("(503) 555-9831")},
			{CompanyName: "United Package", Phone: pointers.String("(503) 555-3199")},
			{CompanyName: "Federal Shipping", Phone: pointers.String("(503) 555-9931")},
		}
		if err := tx.Create(&shippers).Error; err != nil {
			return err
		}

		orders := []domain.Order{
			{CustomerID: pointers.Int(1), EmployeeID: pointers.Int(1), OrderDate: daysAgo(30), RequiredDate: daysAgo(23), ShipVia: pointers.Int(1), Freight: money("12.50"), ShipName: pointers.String("Alfreds Futterkiste"), ShipCity: pointers.String("Berlin"), ShipCountry: pointers.String("Germany")},
			{CustomerID: pointers.Int(1), EmployeeID: pointers.Int(2), OrderDate: daysAgo(15), RequiredDate: daysAgo(8), ShipVia: pointers.Int(2), Freight: money("8.75"), ShipName: pointers.String("Alfreds Futterkiste"), ShipCity: pointers.String("Berlin"), ShipCountry: pointers.String("Germany")},
			{CustomerID: pointers.Int(2), EmployeeID: pointers.Int(1), OrderDate: daysAgo(20), RequiredDate: daysAgo(13), ShipVia: pointers.Int(1), Freight: money("15.30"), ShipName: pointers.String("Ana Trujillo Emparedados"), ShipCity: pointers.String("México D.F."), ShipCountry: pointers.String("Mexico")},
			{CustomerID: pointers.Int(3), EmployeeID: pointers.Int(3), OrderDate: daysAgo(25), RequiredDate: daysAgo(18), ShipVia: pointers.Int(3), Freight: money("22.40"), ShipName: pointers.String("Antonio Moreno Taquería"), ShipCity: pointers.String("México D.F."), ShipCountry: pointers.String("Mexico")},
			{CustomerID: pointers.Int(4), EmployeeID: pointers.Int(2), OrderDate: daysAgo(10), RequiredDate: daysAgo(3), ShipVia: pointers.Int(1), Freight: money("18.90"), ShipName: pointers.String("Around the Horn"), ShipCity: pointers.String("London"), ShipCountry: pointers.String("UK")},
			{CustomerID: pointers.Int(5), EmployeeID: pointers.Int(1), OrderDate: daysAgo(5), RequiredDate: date(time.Now().Year(), time.Now().Month(), time.Now().Day()), ShipVia: pointers.Int(2), Freight: money("9.65"), ShipName: pointers.String("Berglunds snabbköp"), ShipCity: pointers.String("Luleå"), ShipCountry: pointers.String("Sweden")},
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}

		orderDetails := []domain.OrderDetail{
			{OrderID: 1, ProductID: 1, UnitPrice: decimal.RequireFromString("18.00"), Quantity: 5, Discount: decimal.Zero},
			{OrderID: 1, ProductID: 3, UnitPrice: decimal.RequireFromString("10.00"), Quantity: 3, Discount: decimal.RequireFromString("0.05")},
			{OrderID: 2, ProductID: 2, UnitPrice: decimal.RequireFromString("19.00"), Quantity: 2, Discount: decimal.Zero},
			{OrderID: 3, ProductID: 4, UnitPrice: decimal.RequireFromString("22.00"), Quantity: 4, Discount: decimal.Zero},
			{OrderID: 3, ProductID: 6, UnitPrice: decimal.RequireFromString("25.00"), Quantity: 2, Discount: decimal.RequireFromString("0.10")},
			{OrderID: 4, ProductID: 7, UnitPrice: decimal.RequireFromString("30.00"), Quantity: 1, Discount: decimal.Zero},
			{OrderID: 4, ProductID: 8, UnitPrice: decimal.RequireFromString("40.00"), Quantity: 2, Discount: decimal.Zero},
			{OrderID: 5, ProductID: 9, UnitPrice: decimal.RequireFromString("97.00"), Quantity: 1, Discount: decimal.Zero},
			{OrderID: 6, ProductID: 10, UnitPrice: decimal.RequireFromString("31.00"), Quantity: 3, Discount: decimal.Zero},
			{OrderID: 6, ProductID: 1, UnitPrice: decimal.RequireFromString("18.00"), Quantity: 2, Discount: decimal.Zero},
		}
		return tx.Create(&orderDetails).Error
	})
}
