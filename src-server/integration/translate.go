package integration

import (
	"slashbridge/src-server/descriptor"

	"github.com/bwmarrin/discordgo"
)

var optionTypes = map[descriptor.OptionKind]discordgo.ApplicationCommandOptionType{
	descriptor.KindString:      discordgo.ApplicationCommandOptionString,
	descriptor.KindInteger:     discordgo.ApplicationCommandOptionInteger,
	descriptor.KindBoolean:     discordgo.ApplicationCommandOptionBoolean,
	descriptor.KindUser:        discordgo.ApplicationCommandOptionUser,
	descriptor.KindChannel:     discordgo.ApplicationCommandOptionChannel,
	descriptor.KindRole:        discordgo.ApplicationCommandOptionRole,
	descriptor.KindMentionable: discordgo.ApplicationCommandOptionMentionable,
	descriptor.KindNumber:      discordgo.ApplicationCommandOptionNumber,
	descriptor.KindAttachment:  discordgo.ApplicationCommandOptionAttachment,
}

// TranslateOptions converts option descriptors into Discord options, keeping
// input order. Unknown options are dropped, as are choices on non-string
// options and choices that were never set.
func TranslateOptions(options []descriptor.Option) []*discordgo.ApplicationCommandOption {
	translated := make([]*discordgo.ApplicationCommandOption, 0, len(options))
	for _, option := range options {
		optionType, ok := optionTypes[option.Kind]
		if !ok {
			continue
		}
		translated = append(translated, &discordgo.ApplicationCommandOption{
			Type:        optionType,
			Name:        option.Name,
			Description: option.Description,
			Required:    option.Required,
			Choices:     translateChoices(option),
		})
	}
	return translated
}

func translateChoices(option descriptor.Option) []*discordgo.ApplicationCommandOptionChoice {
	if option.Kind != descriptor.KindString {
		return nil
	}
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, choice := range option.Choices {
		if choice.IsDefault() {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  choice.Name.String(),
			Value: choice.Value.String(),
		})
	}
	return choices
}
