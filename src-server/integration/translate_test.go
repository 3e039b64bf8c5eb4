package integration

import (
	"testing"

	"slashbridge/src-server/descriptor"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateOptionsDropsUnknown(t *testing.T) {
	options := []descriptor.Option{
		{Name: "first", Description: "first option", Kind: descriptor.KindString, Required: true},
		{Kind: descriptor.KindUnknown},
		{Name: "second", Description: "second option", Kind: descriptor.KindInteger},
	}

	translated := TranslateOptions(options)

	require.Len(t, translated, 2)
	assert.Equal(t, "first", translated[0].Name)
	assert.Equal(t, discordgo.ApplicationCommandOptionString, translated[0].Type)
	assert.True(t, translated[0].Required)
	assert.Equal(t, "second", translated[1].Name)
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, translated[1].Type)
	assert.False(t, translated[1].Required)
}

func TestTranslateOptionsLengthMatchesKnownKinds(t *testing.T) {
	kinds := []descriptor.OptionKind{
		descriptor.KindUnknown, descriptor.KindString, descriptor.KindUnknown,
		descriptor.KindInteger, descriptor.KindBoolean, descriptor.KindUser,
		descriptor.KindChannel, descriptor.KindRole, descriptor.KindMentionable,
		descriptor.KindNumber, descriptor.KindAttachment, descriptor.KindUnknown,
	}
	var options []descriptor.Option
	known := 0
	for _, kind := range kinds {
		options = append(options, descriptor.Option{Name: kind.String(), Kind: kind})
		if kind != descriptor.KindUnknown {
			known++
		}
	}

	translated := TranslateOptions(options)

	require.Len(t, translated, known)
	for _, option := range translated {
		require.NotNil(t, option)
		assert.NotEqual(t, "unknown", option.Name)
	}
}

func TestTranslateOptionsEmpty(t *testing.T) {
	assert.Empty(t, TranslateOptions(nil))
	assert.Empty(t, TranslateOptions([]descriptor.Option{{Kind: descriptor.KindUnknown}}))
}

func TestTranslateChoicesOnlyForStrings(t *testing.T) {
	choices := []descriptor.Choice{
		{Name: descriptor.Explicit("one"), Value: descriptor.Explicit("1")},
	}
	options := []descriptor.Option{
		{Name: "count", Kind: descriptor.KindInteger, Choices: choices},
		{Name: "flag", Kind: descriptor.KindBoolean, Choices: choices},
		{Name: "word", Kind: descriptor.KindString, Choices: choices},
	}

	translated := TranslateOptions(options)

	require.Len(t, translated, 3)
	assert.Empty(t, translated[0].Choices)
	assert.Empty(t, translated[1].Choices)
	require.Len(t, translated[2].Choices, 1)
	assert.Equal(t, "one", translated[2].Choices[0].Name)
	assert.Equal(t, "1", translated[2].Choices[0].Value)
}

func TestTranslateChoicesSkipsDefaults(t *testing.T) {
	option := descriptor.Option{
		Name: "mode",
		Kind: descriptor.KindString,
		Choices: []descriptor.Choice{
			{},
			{Name: descriptor.Explicit("fast"), Value: descriptor.Explicit("f")},
			{Name: descriptor.Explicit(descriptor.DefaultText), Value: descriptor.Explicit(descriptor.DefaultText)},
			{Name: descriptor.Explicit("half")},
			{},
		},
	}

	translated := TranslateOptions([]descriptor.Option{option})

	require.Len(t, translated, 1)
	got := translated[0].Choices
	require.Len(t, got, 3)
	assert.Equal(t, "fast", got[0].Name)
	assert.Equal(t, "f", got[0].Value)
	// same content as the default, but set explicitly
	assert.Equal(t, descriptor.DefaultText, got[1].Name)
	assert.Equal(t, descriptor.DefaultText, got[1].Value)
	assert.Equal(t, "half", got[2].Name)
	assert.Equal(t, descriptor.DefaultText, got[2].Value)
}
