package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

func TestLookup(t *testing.T) {
	for _, want := range Profiles() {
		got, err := Lookup(want.Name)
		require.NoError(t, err)
		assert.Equal(t, want.Name, got.Name)
	}

	_, err := Lookup("extjs3")
	assert.Error(t, err)
}

func TestRootKeyRename(t *testing.T) {
	assert.Equal(t, "root", ExtJS4.RootKey)
	assert.Equal(t, "rootProperty", ExtJS5.RootKey)
	assert.Equal(t, "rootProperty", Touch2.RootKey)
}

func TestAllowNullKeyRename(t *testing.T) {
	assert.Equal(t, "useNull", ExtJS4.AllowNullKey)
	assert.Equal(t, "allowNull", ExtJS5.AllowNullKey)
	assert.Equal(t, "allowNull", Touch2.AllowNullKey)
}

func TestOnlyTouch2NestsClassConfig(t *testing.T) {
	assert.False(t, ExtJS4.ClassConfig)
	assert.False(t, ExtJS5.ClassConfig)
	assert.True(t, Touch2.ClassConfig)
}

func TestTouch2FeatureGaps(t *testing.T) {
	assert.False(t, Touch2.SupportsWriter)
	assert.False(t, Touch2.SupportsValidation(model.ValidationRange))
	assert.True(t, Touch2.SupportsValidation(model.ValidationPresence))

	assert.True(t, ExtJS4.SupportsWriter)
	assert.True(t, ExtJS4.SupportsValidation(model.ValidationRange))
	assert.True(t, ExtJS5.SupportsValidation(model.ValidationRange))
}
