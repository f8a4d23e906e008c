package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"itemservice/internal/config"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/validation"
)

type CatalogTestSuite struct {
	suite.Suite
	dir string
}

func (s *CatalogTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *CatalogTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CatalogTestSuite) TestDefault() {
	messages, err := Default()

	s.Require().NoError(err)
	s.Assert().Equal([]string{
		"max",
		"max.item.quantity",
		"range",
		"range.item.price",
		"required",
		"required.item.itemName",
		"totalPriceMin",
		"typeMismatch",
		"typeMismatch.int",
	}, Keys(messages))
	s.Assert().Equal("Price must be between {0} and {1}.", messages["range.item.price"])
}

func (s *CatalogTestSuite) TestFormatOf() {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{path: "messages.yaml", expected: FormatYAML},
		{path: "/etc/messages.YML", expected: FormatYAML},
		{path: "messages.toml", expected: FormatTOML},
		{path: "messages.properties", wantErr: true},
		{path: "messages", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.path, func() {
			format, err := FormatOf(tt.path)

			if tt.wantErr {
				s.Assert().ErrorIs(err, ErrUnsupportedFormat)
				return
			}
			s.Require().NoError(err)
			s.Assert().Equal(tt.expected, format)
		})
	}
}

func (s *CatalogTestSuite) TestLoadFile_YAML() {
	path := s.writeFile("messages.yml", `
required.item.itemName: "Name please"
range:
  item:
    price: "Between {0} and {1}"
`)

	messages, err := LoadFile(path)

	s.Require().NoError(err)
	s.Assert().Equal(validation.MapCatalog{
		"required.item.itemName": "Name please",
		"range.item.price":       "Between {0} and {1}",
	}, messages)
}

func (s *CatalogTestSuite) TestLoadFile_TOML() {
	path := s.writeFile("messages.toml", `
"required.item.itemName" = "Name please"
totalPriceMin = "At least {0}, got {1}"

[max.item]
quantity = "Up to {0}"
`)

	messages, err := LoadFile(path)

	s.Require().NoError(err)
	s.Assert().Equal(validation.MapCatalog{
		"required.item.itemName": "Name please",
		"totalPriceMin":          "At least {0}, got {1}",
		"max.item.quantity":      "Up to {0}",
	}, messages)
}

func (s *CatalogTestSuite) TestLoadFile_Errors() {
	s.Run("missing_file", func() {
		_, err := LoadFile(filepath.Join(s.dir, "absent.yaml"))
		s.Assert().ErrorIs(err, os.ErrNotExist)
	})

	s.Run("unsupported_extension", func() {
		_, err := LoadFile(s.writeFile("messages.json", `{}`))
		s.Assert().ErrorIs(err, ErrUnsupportedFormat)
	})

	s.Run("malformed_yaml", func() {
		_, err := LoadFile(s.writeFile("broken.yaml", "required: [unterminated"))
		s.Assert().ErrorContains(err, "parse catalog")
	})

	s.Run("non_string_value", func() {
		_, err := LoadFile(s.writeFile("numbers.toml", "max = 5\n"))
		s.Assert().ErrorContains(err, "catalog key max: expected a string")
	})
}

func (s *CatalogTestSuite) TestNew() {
	s.Run("embedded_only", func() {
		messages, err := New(&config.ValidationConfig{}, logger.NewNop())

		s.Require().NoError(err)
		s.Assert().Equal(9, messages.Len())
	})

	s.Run("file_overrides_embedded", func() {
		path := s.writeFile("override.yaml", `
required.item.itemName: "Give the item a name."
required.item.description: "Describe the item."
`)

		messages, err := New(&config.ValidationConfig{CatalogPath: path}, logger.NewNop())

		s.Require().NoError(err)
		s.Assert().Equal(10, messages.Len())
		s.Assert().Equal("Give the item a name.", messages["required.item.itemName"])
		s.Assert().Equal("This field is required.", messages["required"])
	})

	s.Run("bad_override", func() {
		messages, err := New(&config.ValidationConfig{CatalogPath: filepath.Join(s.dir, "none.toml")}, logger.NewNop())

		s.Assert().Error(err)
		s.Assert().Nil(messages)
	})
}

func (s *CatalogTestSuite) TestDefaultCatalog_ResolvesItemMessages() {
	messages, err := Default()
	s.Require().NoError(err)
	resolver := validation.NewMessageResolver(messages, nil)

	violations := validation.NewViolations("item")
	violations.RejectValue("price", 500, "range", 1000, 1000000)
	violations.RejectBindingFailure("quantity", "abc", "int")
	violations.Reject("totalPriceMin", 10000, 5000)

	resolved := resolver.ResolveAll(violations)

	s.Require().Len(resolved, 3)
	s.Assert().Equal("Price must be between 1000 and 1000000.", resolved[0].Text)
	s.Assert().Equal("typeMismatch.int", resolved[1].Key)
	s.Assert().Equal("Price * quantity must be at least 10000. Current value = 5000", resolved[2].Text)
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
