//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should register the translate subcommand and its flags", func(t *testing.T) {
		t.Parallel()

		// given
		container := newContainer()

		// when
		root := buildRootCommand(injectTranslateController(container))
		addSubcommands(root, injectAppContext(container))

		// then
		sub, _, err := root.Find([]string{"translate"})
		require.NoError(t, err)
		assert.Equal(t, "translate", sub.Name())
		assert.NotNil(t, sub.Flags().Lookup("prefix"))
		assert.NotNil(t, root.Flags().Lookup("output"))
		assert.NotNil(t, root.PersistentFlags().Lookup("dry-run"))
		assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	})
}
