// Package main implements a mock catalog and auth API server for local
// development.
package main

import (
	"embed"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/KriraAI/Print24-frontend/internal/catalog"
)

//go:embed testdata/*
var testdataFS embed.FS

var (
	categories []catalog.Category
	products   []catalog.Product
)

// Fixture accounts. The admin account mirrors the privileged role the
// storefront recognizes.
var accounts = map[string]struct {
	Password string
	User     catalog.User
}{
	"admin@print24.test": {
		Password: "admin123",
		User:     catalog.User{ID: "u1", Name: "Admin", Email: "admin@print24.test", Role: "admin"},
	},
	"customer@print24.test": {
		Password: "customer123",
		User:     catalog.User{ID: "u2", Name: "Sample Customer", Email: "customer@print24.test", Role: "customer"},
	},
}

func init() {
	mustLoad("testdata/categories.json", &categories)
	mustLoad("testdata/products.json", &products)
}

func mustLoad(path string, into interface{}) {
	data, err := testdataFS.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to load fixture", "path", path, "err", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		log.Fatal("Failed to parse fixture", "path", path, "err", err)
	}
}

func main() {
	addr := getEnv("MOCKCATALOG_ADDR", ":18080")

	http.HandleFunc("/api/categories", handleCategories)
	http.HandleFunc("/api/products/category/", handleProductsByCategory)
	http.HandleFunc("/api/products/", handleProduct)
	http.HandleFunc("/api/auth/login", handleLogin)

	log.Info("Mock catalog server listening", "addr", addr)
	log.Info("Fixtures loaded", "categories", len(categories), "products", len(products))
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("Server error", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	categoryID := strings.TrimPrefix(r.URL.Path, "/api/products/category/")
	if categoryID == "" {
		writeError(w, http.StatusBadRequest, "Category ID required")
		return
	}

	matched := []catalog.Product{}
	for _, p := range products {
		if p.Category.ID == categoryID {
			matched = append(matched, p)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func handleProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" || strings.Contains(productID, "/") {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	for _, p := range products {
		if p.ID == productID {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Product not found")
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req catalog.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, ok := accounts[strings.ToLower(req.Email)]
	if !ok || account.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, catalog.LoginResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	user := account.User
	writeJSON(w, http.StatusOK, catalog.LoginResponse{
		Success: true,
		Token:   "mock-token-" + user.ID,
		User:    &user,
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
