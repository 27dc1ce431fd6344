package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/KriraAI/Print24-frontend/internal/cache"
	"github.com/KriraAI/Print24-frontend/internal/catalog"
	"github.com/KriraAI/Print24-frontend/internal/delivery"
	"github.com/KriraAI/Print24-frontend/internal/pricing"
)

// ViewState represents the current view in the application.
type ViewState int

const (
	ViewCategoryList ViewState = iota
	ViewProductList
	ViewProductDetail
	ViewLogin
)

// focusArea identifies which configuration section in the product detail
// view receives key input.
type focusArea int

const (
	focusOptions focusArea = iota
	focusFinish
	focusShape
	focusQuantity
	focusPresets
	focusPincode
)

// categoriesCacheKey is the single key under which the category list is
// cached; there is only one category listing.
const categoriesCacheKey = "categories"

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	// Dependencies
	client          *catalog.Client
	estimator       *delivery.Estimator
	categoriesCache *cache.Cache[string, []catalog.Category]
	productsCache   *cache.Cache[string, []catalog.Product]
	productCache    *cache.Cache[string, catalog.Product]

	// View state
	viewState ViewState
	width     int
	height    int
	styles    Styles
	spin      spinner.Model

	// Category list view
	categoryList      list.Model
	categories        []catalog.Category
	loadingCategories bool

	// Product list view
	productList      list.Model
	products         []catalog.Product
	selectedCategory *catalog.Category
	loadingProducts  bool

	// Product detail view
	selectedProduct *catalog.Product
	loadingProduct  bool
	sel             *pricing.Selection
	total           float64
	focus           focusArea
	optionIdx       int
	finishIdx       int
	shapeIdx        int
	presetIdx       int
	quantityInput   textinput.Model
	pincodeInput    textinput.Model

	// Delivery state
	checkingDelivery bool
	estimate         *delivery.Estimate
	deliveryErr      error

	// Login view
	loginForm   *huh.Form
	creds       *loginCredentials
	loggingIn   bool
	loginStatus string
	user        *catalog.User

	// Error handling
	err error
}

// loginCredentials backs the login form. It lives behind a pointer so the
// form keeps writing to the same allocation across model copies.
type loginCredentials struct {
	Email    string
	Password string
}

// categoryItem implements list.Item for categories.
type categoryItem struct {
	category catalog.Category
}

func (i categoryItem) Title() string       { return i.category.Name }
func (i categoryItem) Description() string { return StripHTML(i.category.Description) }
func (i categoryItem) FilterValue() string { return i.category.Name }

// productItem implements list.Item for products.
type productItem struct {
	product catalog.Product
}

func (i productItem) Title() string { return i.product.Name }

func (i productItem) Description() string {
	desc := fmt.Sprintf("from $%.2f/unit", i.product.BasePrice)
	if i.product.HasOptions() {
		desc += fmt.Sprintf(" • %d options", len(i.product.Options))
	}
	return desc
}

func (i productItem) FilterValue() string { return i.product.Name }

// Messages
type (
	categoriesLoadedMsg struct {
		categories []catalog.Category
	}
	productsLoadedMsg struct {
		categoryID string
		products   []catalog.Product
	}
	productLoadedMsg struct {
		product *catalog.Product
	}
	deliveryCheckedMsg struct {
		seq      uint64
		estimate delivery.Estimate
		err      error
	}
	loggedInMsg struct {
		resp *catalog.LoginResponse
	}
	errMsg struct {
		err error
	}
)

// NewModel creates a new TUI model.
func NewModel(
	client *catalog.Client,
	estimator *delivery.Estimator,
	categoriesCache *cache.Cache[string, []catalog.Category],
	productsCache *cache.Cache[string, []catalog.Product],
	productCache *cache.Cache[string, catalog.Product],
) Model {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorIndigo)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorHighlight).
		BorderLeftForeground(colorHighlight)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorSlate).
		BorderLeftForeground(colorHighlight)

	categoryList := list.New([]list.Item{}, delegate, 0, 0)
	categoryList.Title = "Print Categories"
	categoryList.SetShowHelp(false)
	categoryList.SetFilteringEnabled(true)
	categoryList.Styles.Title = styles.ListTitle

	productList := list.New([]list.Item{}, delegate, 0, 0)
	productList.Title = "Products"
	productList.SetShowHelp(false)
	productList.SetFilteringEnabled(true)
	productList.Styles.Title = styles.ListTitle

	qi := textinput.New()
	qi.CharLimit = 6
	qi.Width = 8

	pi := textinput.New()
	pi.Placeholder = "Pincode"
	pi.CharLimit = 10
	pi.Width = 12

	return Model{
		client:          client,
		estimator:       estimator,
		categoriesCache: categoriesCache,
		productsCache:   productsCache,
		productCache:    productCache,
		viewState:       ViewCategoryList,
		styles:          styles,
		spin:            sp,
		categoryList:    categoryList,
		productList:     productList,
		quantityInput:   qi,
		pincodeInput:    pi,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.loadCategories(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.categoryList.SetSize(msg.Width-4, msg.Height-8)
		m.productList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	case categoriesLoadedMsg:
		m.loadingCategories = false
		m.categories = msg.categories
		items := make([]list.Item, len(msg.categories))
		for i, c := range msg.categories {
			items[i] = categoryItem{category: c}
		}
		m.categoryList.SetItems(items)

	case productsLoadedMsg:
		// A stale load for a category the user already left is dropped.
		if m.selectedCategory == nil || m.selectedCategory.ID != msg.categoryID {
			break
		}
		m.loadingProducts = false
		m.products = msg.products
		items := make([]list.Item, len(msg.products))
		for i, p := range msg.products {
			items[i] = productItem{product: p}
		}
		m.productList.SetItems(items)

	case productLoadedMsg:
		m.loadingProduct = false
		m.openProductDetail(msg.product)

	case deliveryCheckedMsg:
		// A superseded check must never overwrite a later one.
		if !m.estimator.IsLatest(msg.seq) {
			break
		}
		m.checkingDelivery = false
		if msg.err != nil {
			m.deliveryErr = msg.err
			break
		}
		est := msg.estimate
		m.estimate = &est
		m.deliveryErr = nil

	case loggedInMsg:
		m.loggingIn = false
		if msg.resp.Success {
			m.user = msg.resp.User
			m.client = m.client.Authenticated(msg.resp.Token)
			m.loginForm = nil
			m.loginStatus = ""
			m.viewState = ViewCategoryList
			break
		}
		m.loginStatus = msg.resp.Message
		if m.loginStatus == "" {
			m.loginStatus = "Login failed"
		}
		m.initLoginForm()
		cmds = append(cmds, m.loginForm.Init())

	case errMsg:
		m.loadingCategories = false
		m.loadingProducts = false
		m.loadingProduct = false
		m.checkingDelivery = false
		if m.viewState == ViewLogin {
			m.loggingIn = false
			m.loginStatus = msg.err.Error()
			m.initLoginForm()
			cmds = append(cmds, m.loginForm.Init())
			break
		}
		m.err = msg.err
	}

	// Update sub-models based on view state
	switch m.viewState {
	case ViewCategoryList:
		var cmd tea.Cmd
		m.categoryList, cmd = m.categoryList.Update(msg)
		cmds = append(cmds, cmd)

	case ViewProductList:
		var cmd tea.Cmd
		m.productList, cmd = m.productList.Update(msg)
		cmds = append(cmds, cmd)

	case ViewLogin:
		if m.loginForm != nil && !m.loggingIn {
			form, cmd := m.loginForm.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.loginForm = f
				if m.loginForm.State == huh.StateCompleted {
					m.loggingIn = true
					cmds = append(cmds, m.login(m.creds.Email, m.creds.Password))
				}
			}
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewState {
	case ViewCategoryList:
		return m.handleCategoryListKeys(msg)
	case ViewProductList:
		return m.handleProductListKeys(msg)
	case ViewProductDetail:
		return m.handleDetailKeys(msg)
	case ViewLogin:
		return m.handleLoginKeys(msg)
	}

	return m, nil
}

func (m Model) handleCategoryListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.categoryList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.categoryList, cmd = m.categoryList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "r":
		m.err = nil
		m.loadingCategories = true
		m.categoriesCache.Delete(categoriesCacheKey)
		return m, m.loadCategories()

	case "l":
		if m.user == nil {
			m.viewState = ViewLogin
			m.loginStatus = ""
			m.initLoginForm()
			return m, m.loginForm.Init()
		}
		return m, nil

	case "enter":
		if item, ok := m.categoryList.SelectedItem().(categoryItem); ok {
			cat := item.category
			m.selectedCategory = &cat
			m.viewState = ViewProductList
			m.productList.Title = cat.Name
			m.productList.SetItems(nil)
			m.err = nil
			m.loadingProducts = true
			return m, m.loadProducts(cat.ID)
		}
	}

	var cmd tea.Cmd
	m.categoryList, cmd = m.categoryList.Update(msg)
	return m, cmd
}

func (m Model) handleProductListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.productList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.productList, cmd = m.productList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "backspace":
		m.viewState = ViewCategoryList
		m.selectedCategory = nil
		m.products = nil
		m.err = nil
		return m, nil

	case "r":
		if m.selectedCategory != nil {
			m.err = nil
			m.loadingProducts = true
			m.productsCache.Delete(m.selectedCategory.ID)
			return m, m.loadProducts(m.selectedCategory.ID)
		}
		return m, nil

	case "enter":
		if item, ok := m.productList.SelectedItem().(productItem); ok {
			m.err = nil
			m.loadingProduct = true
			return m, m.loadProduct(item.product.ID)
		}
	}

	var cmd tea.Cmd
	m.productList, cmd = m.productList.Update(msg)
	return m, cmd
}

// openProductDetail resets all configuration state for a freshly loaded
// product and switches to the detail view.
func (m *Model) openProductDetail(p *catalog.Product) {
	m.selectedProduct = p
	m.sel = pricing.NewSelection(p)
	m.focus = focusOptions
	if !p.HasOptions() {
		m.focus = focusFinish
	}
	m.optionIdx = 0
	m.finishIdx = 0
	m.shapeIdx = 0
	m.presetIdx = 0

	m.quantityInput.SetValue(m.sel.Quantity.Raw())
	m.quantityInput.Blur()
	m.pincodeInput.SetValue("")
	m.pincodeInput.Blur()

	// Any previous product's estimate is meaningless here.
	m.estimate = nil
	m.deliveryErr = nil
	m.checkingDelivery = false

	m.recompute()
	m.viewState = ViewProductDetail
}

func (m *Model) recompute() {
	if m.selectedProduct == nil || m.sel == nil {
		m.total = 0
		return
	}
	m.total = pricing.ComputeTotal(m.selectedProduct, m.sel)
}

// focusRing returns the focus order for the current product.
func (m Model) focusRing() []focusArea {
	ring := []focusArea{focusFinish, focusShape, focusQuantity, focusPresets, focusPincode}
	if m.selectedProduct != nil && m.selectedProduct.HasOptions() {
		ring = append([]focusArea{focusOptions}, ring...)
	}
	return ring
}

func (m *Model) moveFocus(step int) {
	ring := m.focusRing()
	idx := 0
	for i, f := range ring {
		if f == m.focus {
			idx = i
			break
		}
	}
	m.setFocus(ring[(idx+step+len(ring))%len(ring)])
}

func (m *Model) setFocus(f focusArea) {
	// Leaving the quantity field settles provisional input.
	if m.focus == focusQuantity && f != focusQuantity {
		m.sel.Quantity.Finalize()
		m.quantityInput.SetValue(m.sel.Quantity.Raw())
		m.recompute()
	}

	m.focus = f
	m.quantityInput.Blur()
	m.pincodeInput.Blur()
	switch f {
	case focusQuantity:
		m.quantityInput.Focus()
	case focusPincode:
		m.pincodeInput.Focus()
	}
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc", "backspace":
		m.setFocus(focusOptions)
		m.viewState = ViewProductList
		m.selectedProduct = nil
		m.sel = nil
		m.estimate = nil
		m.deliveryErr = nil
		m.err = nil
		return m, nil

	case "tab":
		m.moveFocus(1)
		return m, textinput.Blink

	case "shift+tab":
		m.moveFocus(-1)
		return m, textinput.Blink
	}

	switch m.focus {
	case focusOptions:
		return m.handleOptionKeys(key)
	case focusFinish:
		return m.handleFinishKeys(key)
	case focusShape:
		return m.handleShapeKeys(key)
	case focusQuantity:
		return m.handleQuantityKeys(msg)
	case focusPresets:
		return m.handlePresetKeys(key)
	case focusPincode:
		return m.handlePincodeKeys(msg)
	}

	return m, nil
}

func (m Model) handleOptionKeys(key string) (tea.Model, tea.Cmd) {
	opts := m.selectedProduct.Options

	switch key {
	case "up", "k":
		if m.optionIdx > 0 {
			m.optionIdx--
		}
	case "down", "j":
		if m.optionIdx < len(opts)-1 {
			m.optionIdx++
		}
	case " ", "space", "enter":
		if m.optionIdx < len(opts) {
			m.sel.ToggleOption(opts[m.optionIdx].ID)
			m.recompute()
		}
	}
	return m, nil
}

func (m Model) handleFinishKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		if m.finishIdx > 0 {
			m.finishIdx--
		}
	case "right", "l":
		if m.finishIdx < len(pricing.Finishes)-1 {
			m.finishIdx++
		}
	default:
		return m, nil
	}
	m.sel.SetFinish(pricing.Finishes[m.finishIdx])
	m.recompute()
	return m, nil
}

func (m Model) handleShapeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		if m.shapeIdx > 0 {
			m.shapeIdx--
		}
	case "right", "l":
		if m.shapeIdx < len(pricing.Shapes)-1 {
			m.shapeIdx++
		}
	default:
		return m, nil
	}
	m.sel.SetShape(pricing.Shapes[m.shapeIdx])
	m.recompute()
	return m, nil
}

func (m Model) handleQuantityKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "+", "=":
		m.sel.Quantity.Increment()
		m.quantityInput.SetValue(m.sel.Quantity.Raw())
		m.recompute()
		return m, nil

	case "-":
		m.sel.Quantity.Decrement()
		m.quantityInput.SetValue(m.sel.Quantity.Raw())
		m.recompute()
		return m, nil

	case "enter":
		m.sel.Quantity.Finalize()
		m.quantityInput.SetValue(m.sel.Quantity.Raw())
		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	m.quantityInput, cmd = m.quantityInput.Update(msg)
	m.sel.Quantity.SetRaw(m.quantityInput.Value())
	m.recompute()
	return m, cmd
}

func (m Model) handlePresetKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		if m.presetIdx > 0 {
			m.presetIdx--
		}
	case "right", "l":
		if m.presetIdx < len(pricing.PresetQuantities)-1 {
			m.presetIdx++
		}
	case " ", "space", "enter":
		m.sel.Quantity.SetPreset(pricing.PresetQuantities[m.presetIdx])
		m.quantityInput.SetValue(m.sel.Quantity.Raw())
		m.recompute()
	}
	return m, nil
}

func (m Model) handlePincodeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		pincode := strings.TrimSpace(m.pincodeInput.Value())
		if len(pincode) < delivery.MinPincodeLen {
			return m, nil
		}
		// Re-issuing while a check is in flight starts a new sequence; the
		// superseded check's result is discarded when it lands.
		m.checkingDelivery = true
		m.deliveryErr = nil
		seq := m.estimator.Begin()
		return m, m.checkDelivery(seq, pincode)
	}

	var cmd tea.Cmd
	m.pincodeInput, cmd = m.pincodeInput.Update(msg)
	// Editing the pincode keeps the previous estimate visible until the next
	// check completes.
	m.sel.SetPincode(m.pincodeInput.Value())
	return m, cmd
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.viewState = ViewCategoryList
		m.loginForm = nil
		m.loginStatus = ""
		return m, nil
	}

	if m.loginForm != nil && !m.loggingIn {
		form, cmd := m.loginForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.loginForm = f
			if m.loginForm.State == huh.StateCompleted {
				m.loggingIn = true
				return m, tea.Batch(cmd, m.login(m.creds.Email, m.creds.Password))
			}
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) initLoginForm() {
	m.creds = &loginCredentials{}
	m.loginForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&m.creds.Email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("email is required")
					}
					if !strings.Contains(s, "@") {
						return fmt.Errorf("invalid email format")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.creds.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// Commands

func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		if categories, ok := m.categoriesCache.Get(categoriesCacheKey); ok {
			return categoriesLoadedMsg{categories: categories}
		}

		categories, err := m.client.GetCategories(context.Background())
		if err != nil {
			return errMsg{err: fmt.Errorf("loading categories: %w", err)}
		}

		m.categoriesCache.Set(categoriesCacheKey, categories)
		return categoriesLoadedMsg{categories: categories}
	}
}

func (m Model) loadProducts(categoryID string) tea.Cmd {
	return func() tea.Msg {
		if products, ok := m.productsCache.Get(categoryID); ok {
			return productsLoadedMsg{categoryID: categoryID, products: products}
		}

		products, err := m.client.GetProductsByCategory(context.Background(), categoryID)
		if err != nil {
			return errMsg{err: fmt.Errorf("loading products: %w", err)}
		}

		m.productsCache.Set(categoryID, products)
		return productsLoadedMsg{categoryID: categoryID, products: products}
	}
}

func (m Model) loadProduct(productID string) tea.Cmd {
	return func() tea.Msg {
		if product, ok := m.productCache.Get(productID); ok {
			return productLoadedMsg{product: &product}
		}

		product, err := m.client.GetProduct(context.Background(), productID)
		if err != nil {
			return errMsg{err: err}
		}

		m.productCache.Set(productID, *product)
		return productLoadedMsg{product: product}
	}
}

func (m Model) checkDelivery(seq uint64, pincode string) tea.Cmd {
	return func() tea.Msg {
		estimate, err := m.estimator.Check(context.Background(), pincode)
		return deliveryCheckedMsg{seq: seq, estimate: estimate, err: err}
	}
}

func (m Model) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.Login(context.Background(), email, password)
		if err != nil {
			return errMsg{err: err}
		}
		return loggedInMsg{resp: resp}
	}
}

// View renders the current view.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string

	switch m.viewState {
	case ViewCategoryList:
		content = m.viewCategoryList()
	case ViewProductList:
		content = m.viewProductList()
	case ViewProductDetail:
		content = m.viewProductDetail()
	case ViewLogin:
		content = m.viewLogin()
	}

	return m.styles.App.Render(content)
}

func (m Model) viewCategoryList() string {
	var sb strings.Builder

	header := m.styles.HeaderTitle.Render("Print24")
	if m.user != nil {
		header += m.styles.Subtle.Render("  " + m.user.Name)
		if m.user.IsAdmin() {
			header += "  " + m.styles.AdminBanner.Render("ADMIN")
		}
	}
	sb.WriteString(m.styles.Header.Render(header))
	sb.WriteString("\n")

	if m.loadingCategories {
		sb.WriteString(m.spin.View())
		sb.WriteString(" Loading categories...")
	} else if m.err != nil {
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtle.Render("r retry"))
	} else {
		sb.WriteString(m.categoryList.View())
	}

	help := "enter browse • r refresh • q quit"
	if m.user == nil {
		help = "enter browse • l login • r refresh • q quit"
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render(help))

	return sb.String()
}

func (m Model) viewProductList() string {
	var sb strings.Builder

	title := "Products"
	if m.selectedCategory != nil {
		title = m.selectedCategory.Name
	}
	sb.WriteString(m.styles.Header.Render(m.styles.HeaderTitle.Render(title)))
	sb.WriteString("\n")

	if m.loadingProducts || m.loadingProduct {
		sb.WriteString(m.spin.View())
		sb.WriteString(" Loading...")
	} else if m.err != nil {
		if catalog.IsNotFound(m.err) {
			sb.WriteString(m.styles.Error.Render("This product is no longer available."))
		} else {
			sb.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtle.Render("r retry • esc back"))
	} else if len(m.products) == 0 {
		sb.WriteString(m.styles.Subtle.Render("No products in this category yet."))
	} else {
		sb.WriteString(m.productList.View())
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("enter configure • r refresh • esc back • q quit"))

	return sb.String()
}

func (m Model) sectionTitle(label string, area focusArea) string {
	if m.focus == area {
		return m.styles.SectionFocused.Render("▸ " + label)
	}
	return m.styles.SectionTitle.Render("  " + label)
}

func (m Model) viewProductDetail() string {
	if m.selectedProduct == nil || m.sel == nil {
		return "No product selected"
	}

	var sb strings.Builder
	p := m.selectedProduct

	sb.WriteString(m.styles.ProductName.Render(p.Name))
	if p.Category.Name != "" {
		sb.WriteString(m.styles.Subtle.Render("  " + p.Category.Name))
	}
	sb.WriteString("\n")

	if desc := StripHTML(p.Description); desc != "" {
		sb.WriteString(m.styles.ProductDescription.Render(desc))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// Options
	if p.HasOptions() {
		sb.WriteString(m.sectionTitle("Options", focusOptions))
		sb.WriteString("\n")
		for i, opt := range p.Options {
			cursor := "  "
			if m.focus == focusOptions && i == m.optionIdx {
				cursor = m.styles.Highlight.Render("> ")
			}
			check := "[ ]"
			if m.sel.HasOption(opt.ID) {
				check = m.styles.OptionSelected.Render("[x]")
			}
			sb.WriteString(fmt.Sprintf("  %s%s %s (+$%.2f/unit)\n", cursor, check, opt.Name, opt.PriceAdd))
		}
		sb.WriteString("\n")
	}

	// Finish
	sb.WriteString(m.sectionTitle("Finish", focusFinish))
	sb.WriteString(fmt.Sprintf("   ◂ %s ▸  ", m.sel.Finish))
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("x%.1f", m.sel.Finish.Multiplier())))
	sb.WriteString("\n")

	// Shape
	sb.WriteString(m.sectionTitle("Shape", focusShape))
	sb.WriteString(fmt.Sprintf("    ◂ %s ▸  ", m.sel.Shape.Label()))
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("x%.1f", m.sel.Shape.Multiplier())))
	sb.WriteString("\n")

	// Quantity
	sb.WriteString(m.sectionTitle("Quantity", focusQuantity))
	sb.WriteString(" " + m.quantityInput.View())
	sb.WriteString(m.styles.Subtle.Render("  +/- adjust, min 25"))
	sb.WriteString("\n")

	// Presets
	sb.WriteString(m.sectionTitle("Presets", focusPresets))
	sb.WriteString("  ")
	for i, q := range pricing.PresetQuantities {
		label := fmt.Sprintf(" %d ", q)
		switch {
		case m.focus == focusPresets && i == m.presetIdx:
			sb.WriteString(m.styles.Highlight.Render("[" + label + "]"))
		case m.sel.Quantity.Value() == q:
			sb.WriteString(m.styles.OptionSelected.Render(label))
		default:
			sb.WriteString(m.styles.Subtle.Render(label))
		}
	}
	sb.WriteString("\n")

	// Delivery
	sb.WriteString(m.sectionTitle("Delivery", focusPincode))
	sb.WriteString(" " + m.pincodeInput.View())
	sb.WriteString("\n")
	switch {
	case m.checkingDelivery:
		sb.WriteString("    " + m.spin.View() + " Checking delivery...")
		sb.WriteString("\n")
	case m.deliveryErr != nil:
		sb.WriteString("    " + m.styles.Error.Render("Delivery check failed"))
		sb.WriteString("\n")
	case m.estimate != nil:
		sb.WriteString("    " + m.styles.Success.Render(
			fmt.Sprintf("Estimated delivery by %s (to %s)", m.estimate.DisplayDate(), m.estimate.Pincode)))
		sb.WriteString("\n")
	}

	// Total
	sb.WriteString("\n")
	sb.WriteString(m.styles.Price.Render(fmt.Sprintf("Total: $%.2f", m.total)))
	sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  (%d pcs)", m.sel.Quantity.Value())))
	sb.WriteString("\n")

	sb.WriteString("\n")
	help := "tab next section • arrows adjust • space toggle • esc back"
	if m.focus == focusPincode {
		help = "enter check delivery • tab next section • esc back"
	}
	sb.WriteString(m.styles.HelpBar.Render(help))

	return m.styles.Box.Render(sb.String())
}

func (m Model) viewLogin() string {
	var sb strings.Builder

	sb.WriteString(m.styles.HeaderTitle.Render("Sign In"))
	sb.WriteString("\n\n")

	if m.loggingIn {
		sb.WriteString(m.spin.View())
		sb.WriteString(" Signing in...")
		return m.styles.Box.Render(sb.String())
	}

	if m.loginStatus != "" {
		sb.WriteString(m.styles.Error.Render(m.loginStatus))
		sb.WriteString("\n\n")
	}

	if m.loginForm != nil {
		sb.WriteString(m.loginForm.View())
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("esc cancel"))

	return m.styles.Box.Render(sb.String())
}

// GetViewState returns the current view state (for testing).
func (m Model) GetViewState() ViewState {
	return m.viewState
}

// GetSelectedProduct returns the currently configured product (for testing).
func (m Model) GetSelectedProduct() *catalog.Product {
	return m.selectedProduct
}

// GetTotal returns the currently displayed total (for testing).
func (m Model) GetTotal() float64 {
	return m.total
}

// GetSelection returns the live configuration (for testing).
func (m Model) GetSelection() *pricing.Selection {
	return m.sel
}

// CurrentUser returns the authenticated user, or nil.
func (m Model) CurrentUser() *catalog.User {
	return m.user
}
