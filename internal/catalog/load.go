package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type catalogFile struct {
	Categories []Category `mapstructure:"categories"`
	Products   []Product  `mapstructure:"products"`
}

// Load reads the catalog file (YAML) and returns a ready Service.
// Entry order in the file is the display order. Products without an id get
// one assigned; ids only surface in the JSON API, the storefront page does
// not use them.
func Load(path string) (*Service, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", filepath.Base(path), err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validate(file); err != nil {
		return nil, err
	}

	for i := range file.Products {
		if file.Products[i].ID == "" {
			file.Products[i].ID = uuid.NewString()
		}
	}

	return NewService(file.Categories, file.Products), nil
}

func validate(file catalogFile) error {
	val := validator.New()

	for i, c := range file.Categories {
		if err := val.Struct(c); err != nil {
			return fmt.Errorf("catalog: category %d: %w", i, simplify(err))
		}
	}
	for i, p := range file.Products {
		if err := val.Struct(p); err != nil {
			return fmt.Errorf("catalog: product %d (%q): %w", i, p.Name, simplify(err))
		}
	}
	return nil
}

// simplify reduces validator's multi-line error to the offending fields.
func simplify(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(parts, ", "))
}
