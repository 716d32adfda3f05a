package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Account roles and statuses as stored in the users table.
const (
	RoleAdministrator = "admin"
	RoleOperator      = "petani"

	StatusActive   = "Aktif"
	StatusInactive = "Nonaktif"
)

// Article statuses as stored in the news table.
const (
	ArticlePublished = "Published"
	ArticleDraft     = "Draft"
)

// Device states as stored in the robot_status table.
const (
	ConnectionConnected = "terhubung"
	OperationStandby    = "Standby"
)

//go:embed fixtures.yaml
var defaultFixturesYAML []byte

// Account is a demo user. Password is plaintext until it is hashed on insert.
// An empty Status is stored as StatusActive.
type Account struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Status   string `yaml:"status,omitempty"`
}

// StoredStatus returns the status written to the users table.
func (a Account) StoredStatus() string {
	if a.Status == "" {
		return StatusActive
	}
	return a.Status
}

// Article is a demo news article.
type Article struct {
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
	ImageURL string `yaml:"image_url"`
	Date     string `yaml:"date"`
	Status   string `yaml:"status"`
}

// Parameter is a named numeric system parameter.
type Parameter struct {
	Name        string  `yaml:"name"`
	Value       float64 `yaml:"value"`
	Unit        string  `yaml:"unit"`
	Description string  `yaml:"description"`
}

// Snapshot holds the environmental readings written for every operator.
type Snapshot struct {
	Temperature float64 `yaml:"temperature"`
	Humidity    float64 `yaml:"humidity"`
	PH          float64 `yaml:"ph"`
	Nitrogen    float64 `yaml:"nitrogen"`
	Phosphorus  float64 `yaml:"phosphorus"`
	Potassium   float64 `yaml:"potassium"`
}

// DeviceStatus is the robot state written alongside each snapshot.
type DeviceStatus struct {
	Connection   string `yaml:"connection"`
	Operation    string `yaml:"operation"`
	SeedsPlanted int    `yaml:"seeds_planted"`
	Battery      int    `yaml:"battery"`
}

// Fixtures is the complete demo dataset.
type Fixtures struct {
	Accounts   []Account    `yaml:"accounts"`
	Articles   []Article    `yaml:"articles"`
	Parameters []Parameter  `yaml:"parameters"`
	Snapshot   Snapshot     `yaml:"sensor_snapshot"`
	Device     DeviceStatus `yaml:"device_status"`
}

// DefaultFixtures returns the embedded demo dataset. It panics only if the
// embedded file is malformed, which is a build defect.
func DefaultFixtures() Fixtures {
	f, err := LoadFixtures(bytes.NewReader(defaultFixturesYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures: %v", err))
	}
	return f
}

// LoadFixtures decodes and validates a fixture document.
func LoadFixtures(r io.Reader) (Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixtures{}, errors.New("decode fixtures: empty document")
		}
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

// LoadFixturesFile reads fixtures from a YAML file on disk.
func LoadFixturesFile(path string) (Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer func() { _ = file.Close() }()

	return LoadFixtures(file)
}

// Validate checks that the dataset can be inserted as-is: known roles and
// statuses, and no duplicate usernames or parameter names.
func (f Fixtures) Validate() error {
	var errs []error

	usernames := make(map[string]bool, len(f.Accounts))
	for i, a := range f.Accounts {
		switch {
		case a.Username == "":
			errs = append(errs, fmt.Errorf("account %d: empty username", i))
		case usernames[a.Username]:
			errs = append(errs, fmt.Errorf("account %d: duplicate username %q", i, a.Username))
		}
		usernames[a.Username] = true

		if a.Password == "" {
			errs = append(errs, fmt.Errorf("account %q: empty password", a.Username))
		}
		if a.Role != RoleAdministrator && a.Role != RoleOperator {
			errs = append(errs, fmt.Errorf("account %q: unknown role %q", a.Username, a.Role))
		}
		if st := a.StoredStatus(); st != StatusActive && st != StatusInactive {
			errs = append(errs, fmt.Errorf("account %q: unknown status %q", a.Username, a.Status))
		}
	}

	for i, a := range f.Articles {
		if a.Title == "" {
			errs = append(errs, fmt.Errorf("article %d: empty title", i))
		}
		if a.Status != ArticlePublished && a.Status != ArticleDraft {
			errs = append(errs, fmt.Errorf("article %q: unknown status %q", a.Title, a.Status))
		}
	}

	names := make(map[string]bool, len(f.Parameters))
	for i, p := range f.Parameters {
		switch {
		case p.Name == "":
			errs = append(errs, fmt.Errorf("parameter %d: empty name", i))
		case names[p.Name]:
			errs = append(errs, fmt.Errorf("parameter %d: duplicate name %q", i, p.Name))
		}
		names[p.Name] = true
	}

	if f.Device.Battery < 0 || f.Device.Battery > 100 {
		errs = append(errs, fmt.Errorf("device status: battery %d out of range", f.Device.Battery))
	}

	return errors.Join(errs...)
}
