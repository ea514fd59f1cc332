package authz

// Catálogo estático de permisos. Es configuración, no estado: se construye
// una vez en el arranque con NewCatalog() y se inyecta por referencia al
// motor de autorización y al router. Cambiarlo es una edición de despliegue.

// FeaturePermission un permiso de grano fino dentro de un área de la aplicación.
type FeaturePermission struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// MenuItem entrada navegable del menú: su permiso de nivel tab, si es solo
// para admins y los permisos de grano fino anidados bajo ella.
type MenuItem struct {
	Href       string `json:"href"`
	Icon       string `json:"icon"`
	Label      string `json:"label"`
	Permission string `json:"permission"`
	AdminOnly  bool   `json:"admin_only"`
	Category   string `json:"-"`
}

// Catalog registro inmutable de permission keys agrupadas por categoría.
type Catalog struct {
	categories []string
	features   map[string][]FeaturePermission
	menu       []MenuItem
	keys       []string
	keySet     map[string]struct{}
}

// NewCatalog construye el catálogo completo. Las keys son estables: las
// referencian los grants persistidos y el frontend.
func NewCatalog() *Catalog {
	features := map[string][]FeaturePermission{
		"dashboard": {
			{Key: "view_dashboard", Name: "View Dashboard", Icon: "👁️"},
		},
		"products": {
			{Key: "view_products", Name: "View Products", Icon: "👁️"},
			{Key: "create_product", Name: "Add Products", Icon: "➕"},
			{Key: "edit_product", Name: "Edit Products", Icon: "✏️"},
			{Key: "delete_product", Name: "Delete Products", Icon: "🗑️"},
		},
		"inventory": {
			{Key: "view_inventory", Name: "View Inventory", Icon: "👁️"},
			{Key: "edit_inventory", Name: "Edit Inventory", Icon: "✏️"},
			{Key: "manage_stock", Name: "Manage Stock Levels", Icon: "📊"},
		},
		"sales": {
			{Key: "view_sales", Name: "View Sales", Icon: "👁️"},
			{Key: "create_sale", Name: "Add Sales", Icon: "➕"},
			{Key: "edit_sale", Name: "Edit Sales", Icon: "✏️"},
			{Key: "delete_sale", Name: "Delete Sales", Icon: "🗑️"},
		},
		"customers": {
			{Key: "view_customers", Name: "View Customers", Icon: "👁️"},
			{Key: "create_customer", Name: "Add Customers", Icon: "➕"},
			{Key: "edit_customer", Name: "Edit Customers", Icon: "✏️"},
			{Key: "delete_customer", Name: "Delete Customers", Icon: "🗑️"},
		},
		"reports": {
			{Key: "view_reports", Name: "View Reports", Icon: "👁️"},
		},
		"employees": {
			{Key: "manage_employees", Name: "View Employees", Icon: "👁️"},
			{Key: "create_employee", Name: "Add Employees", Icon: "➕"},
			{Key: "edit_employee", Name: "Edit Employees", Icon: "✏️"},
			{Key: "delete_employee", Name: "Delete Employees", Icon: "🗑️"},
		},
		"roles": {
			{Key: "manage_roles", Name: "View Roles", Icon: "👁️"},
			{Key: "create_role", Name: "Create Roles", Icon: "➕"},
			{Key: "edit_role", Name: "Edit Roles", Icon: "✏️"},
			{Key: "delete_role", Name: "Delete Roles", Icon: "🗑️"},
			{Key: "manage_permissions", Name: "Manage Permissions", Icon: "🔐"},
		},
		"settings": {
			{Key: "manage_shop", Name: "View Settings", Icon: "👁️"},
			{Key: "edit_shop", Name: "Edit Shop Settings", Icon: "✏️"},
			{Key: "manage_billing", Name: "Manage Billing", Icon: "💳"},
		},
	}

	menu := []MenuItem{
		{Href: "/dashboard", Icon: "📊", Label: "Dashboard", Permission: "view_dashboard", Category: "dashboard"},
		{Href: "/dashboard/products", Icon: "📦", Label: "Products", Permission: "view_products", Category: "products"},
		{Href: "/dashboard/inventory", Icon: "📋", Label: "Inventory", Permission: "view_inventory", Category: "inventory"},
		{Href: "/dashboard/sales", Icon: "💰", Label: "Sales", Permission: "view_sales", Category: "sales"},
		{Href: "/dashboard/customers", Icon: "👥", Label: "Customers", Permission: "view_customers", Category: "customers"},
		{Href: "/dashboard/reports", Icon: "📈", Label: "Reports", Permission: "view_reports", Category: "reports"},
		{Href: "/dashboard/employees", Icon: "👨‍💼", Label: "Employees", Permission: "manage_employees", AdminOnly: true, Category: "employees"},
		{Href: "/dashboard/roles", Icon: "👔", Label: "Role Management", Permission: "manage_roles", AdminOnly: true, Category: "roles"},
		{Href: "/dashboard/settings", Icon: "⚙️", Label: "Settings", Permission: "manage_shop", AdminOnly: true, Category: "settings"},
	}

	c := &Catalog{
		features: features,
		menu:     menu,
		keySet:   make(map[string]struct{}),
	}
	// El orden de categorías sigue el menú para que los listados sean estables.
	for _, m := range menu {
		c.categories = append(c.categories, m.Category)
		for _, f := range features[m.Category] {
			c.keys = append(c.keys, f.Key)
			c.keySet[f.Key] = struct{}{}
		}
	}
	return c
}

// ListMenuItems devuelve la secuencia ordenada de entradas del menú.
func (c *Catalog) ListMenuItems() []MenuItem {
	out := make([]MenuItem, len(c.menu))
	copy(out, c.menu)
	return out
}

// Categories devuelve las categorías en orden de menú.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// PermissionsByCategory devuelve los permisos de grano fino de una categoría, en orden.
func (c *Catalog) PermissionsByCategory(category string) []FeaturePermission {
	fs, ok := c.features[category]
	if !ok {
		return nil
	}
	out := make([]FeaturePermission, len(fs))
	copy(out, fs)
	return out
}

// AllKeys devuelve todas las permission keys del catálogo, en orden estable.
func (c *Catalog) AllKeys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Has informa si la key existe en el catálogo.
func (c *Catalog) Has(key string) bool {
	_, ok := c.keySet[key]
	return ok
}
