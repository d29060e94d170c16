package catalog_test

import (
	"testing"

	"jobshop/internal/catalog"
	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefault(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestDefault(t *testing.T) {
	c := loadDefault(t)

	assert.Equal(t, catalog.SupportedVersion, c.Version())

	names := make([]string, 0)
	for _, cat := range c.Categories() {
		names = append(names, cat.Name)
	}
	assert.ElementsMatch(t, []string{"Lathe", "cnc", "umc", "Milling", "Drilling"}, names)
}

func TestLoad(t *testing.T) {
	t.Run("should reject unsupported version", func(t *testing.T) {
		doc := []byte("version: 2\ncategories:\n  - name: Lathe\n    sizes: []\n")

		c, err := catalog.Load(doc)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("should reject malformed yaml", func(t *testing.T) {
		c, err := catalog.Load([]byte("version: [broken"))

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should reject empty category list", func(t *testing.T) {
		c, err := catalog.Load([]byte("version: 1\ncategories: []\n"))

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCatalog_ValidateSelection(t *testing.T) {
	c := loadDefault(t)

	t.Run("should accept full lathe chain", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "Lathe",
			MachineSize:     "small",
			MachineCode:     "SFL3",
			WorkerName:      "Sanjay",
		})

		assert.NoError(t, err)
	})

	t.Run("should accept single-machine category", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "Milling",
			MachineSize:     "FML01",
			WorkerName:      "Ramakanat",
		})

		assert.NoError(t, err)
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "Grinding",
			MachineSize:     "small",
			MachineCode:     "SFL1",
			WorkerName:      "Naseem",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "machine_category")
	})

	t.Run("should reject size outside category", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "umc",
			MachineSize:     "small",
			WorkerName:      "Rajnish kumar",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "machine_size")
	})

	t.Run("should reject code on size without codes", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "Drilling",
			MachineSize:     "FDL01",
			MachineCode:     "SFL1",
			WorkerName:      "Rahman",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "machine_code")
	})

	t.Run("should require code on size that defines codes", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "cnc",
			MachineSize:     "medium",
			WorkerName:      "Mufeed alam",
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "machine_code")
	})

	t.Run("should reject code outside the size", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "Lathe",
			MachineSize:     "medium",
			MachineCode:     "SFL1",
			WorkerName:      "Usman bhai",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "machine_code")
	})

	t.Run("should reject worker off the roster", func(t *testing.T) {
		// Sanjay runs small lathes, not cnc machines.
		err := c.ValidateSelection(assignment.Selection{
			MachineCategory: "cnc",
			MachineSize:     "small",
			MachineCode:     "SFL1",
			WorkerName:      "Sanjay",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker_name")
	})

	t.Run("should require size and worker", func(t *testing.T) {
		err := c.ValidateSelection(assignment.Selection{MachineCategory: "Lathe"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "machine_size")

		err = c.ValidateSelection(assignment.Selection{
			MachineCategory: "Lathe",
			MachineSize:     "large",
			MachineCode:     "LFL2",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker_name")
	})
}
