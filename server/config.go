package main

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const defaultPassword = "admin"

// Config is the dev host's persisted settings.
type Config struct {
	AdminPasswordHash string `json:"admin_password_hash"`
	Port              string `json:"port"`
	Host              string `json:"host"`
	DBPath            string `json:"db_path"`
	ServerName        string `json:"server_name"`
	// AuditLimit caps the rows returned by /api/audit.
	AuditLimit int `json:"audit_limit"`
	mu         sync.RWMutex
	configFile string
}

func NewConfig(filename string) *Config {
	if filename == "" {
		filename = "hostconfig.json"
	}
	return &Config{
		configFile: filename,
		// Defaults
		Port:       "8999",
		Host:       "localhost",
		DBPath:     "host.db",
		ServerName: "NUI Dev Host",
		AuditLimit: 200,
	}
}

func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err == nil {
		if err := json.Unmarshal(data, c); err != nil {
			return err
		}
	}

	if c.AdminPasswordHash == "" {
		log.Printf("No admin password configured, using the default %q", defaultPassword)
		if err := c.setPasswordInternal(defaultPassword); err != nil {
			return err
		}
	}
	// Auto-update config file with any missing fields (defaults)
	return c.saveInternal()
}

func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.saveInternal()
}

func (c *Config) saveInternal() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.configFile, data, 0600)
}

// SetPassword replaces the admin password and saves the file.
func (c *Config) SetPassword(password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.setPasswordInternal(password); err != nil {
		return err
	}
	return c.saveInternal()
}

func (c *Config) setPasswordInternal(password string) error {
	if password == "" {
		return errors.New("empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.AdminPasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the admin hash.
func (c *Config) CheckPassword(password string) bool {
	c.mu.RLock()
	hash := c.AdminPasswordHash
	c.mu.RUnlock()
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (c *Config) Addr() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Host + ":" + c.Port
}
