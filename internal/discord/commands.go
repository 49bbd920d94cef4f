package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/ventkeeper/ventkeeper/internal/app"
)

const (
	resetCommandName = "reset-vent"
	confirmInputID   = "confirmation"
)

// onReady updates the command set and presence on every start, just to make
// sure the command exists.
func (c *Client) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	var noPermissions int64
	dmDisabled := false

	_, err := s.ApplicationCommandCreate(s.State.User.ID, "", &discordgo.ApplicationCommand{
		Name:                     resetCommandName,
		Description:              "Resets the vent channel",
		DefaultMemberPermissions: &noPermissions,
		DMPermission:             &dmDisabled,
	})
	if err != nil {
		c.logger.Errorf("discord: failed to register %s command: %v", resetCommandName, err)
	}

	if err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{{
			Name: c.status,
			Type: activityType(c.activity),
		}},
	}); err != nil {
		c.logger.Errorf("discord: failed to set presence: %v", err)
	}

	c.logger.Infof("discord: logged in and ready")
}

func (c *Client) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == resetCommandName {
			c.handleResetCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		c.handleConfirmSubmit(s, i)
	}
}

// handleResetCommand starts a confirmation flow: the actor gets a text-entry
// challenge scoped to a token unique to this invocation, and has one minute
// to answer it.
func (c *Client) handleResetCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	token := c.confirmer.NewToken(c.clock.Now())
	replies := c.confirmer.Begin(token)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: token,
			Title:    "Reset the vent channel?",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    confirmInputID,
							Label:       "Type \"yes\" to confirm the reset",
							Style:       discordgo.TextInputShort,
							Placeholder: "yes",
							Required:    true,
							MaxLength:   16,
						},
					},
				},
			},
		},
	})
	if err != nil {
		c.logger.Errorf("discord: failed to present confirmation prompt: %v", err)
		c.confirmer.Resolve(token, "")
		return
	}

	go func() {
		if c.confirmer.Wait(token, replies) == app.ConfirmationTimedOut {
			c.logger.Infof("discord: confirmation %s timed out", token)
			ephemeralFollowup(s, i, "Timed out.")
		}
	}()
}

// handleConfirmSubmit routes a confirmation response to its invocation.
// Stale or foreign tokens are answered but never trigger a run.
func (c *Client) handleConfirmSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()

	outcome, ok := c.confirmer.Resolve(data.CustomID, confirmInput(data))
	if !ok {
		ephemeralReply(s, i, "This confirmation has expired.")
		return
	}

	switch outcome {
	case app.ConfirmationCancelled:
		ephemeralReply(s, i, "Cancelled. The vent channel was left untouched.")
	case app.ConfirmationConfirmed:
		c.runManualPurge(s, i)
	}
}

func (c *Client) runManualPurge(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ephemeralReply(s, i, "Vent clearing in progress...")

	trigger := app.Trigger{Source: app.TriggerManual, FiredAt: c.clock.Now()}
	if i.Member != nil && i.Member.User != nil {
		trigger.ActorID = c.parseID(i.Member.User.ID)
		trigger.ActorTag = i.Member.User.Username
	}
	c.logger.Infof("discord: vent channel manually wiped by %s (%d) at %s",
		trigger.ActorTag, trigger.ActorID, trigger.FiredAt)

	content := "Vent cleared."
	if _, err := c.service.Run(trigger); err != nil {
		c.logger.Errorf("discord: manual purge failed: %v", err)
		content = "Vent reset failed. Check the logs."
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		c.logger.Errorf("discord: failed to update confirmation status: %v", err)
	}
}

// confirmInput digs the text-entry value out of the submitted components.
func confirmInput(data discordgo.ModalSubmitInteractionData) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok && input.CustomID == confirmInputID {
				return input.Value
			}
		}
	}
	return ""
}

func ephemeralReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func ephemeralFollowup(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, _ = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func activityType(name string) discordgo.ActivityType {
	switch name {
	case "playing":
		return discordgo.ActivityTypeGame
	case "streaming":
		return discordgo.ActivityTypeStreaming
	case "watching":
		return discordgo.ActivityTypeWatching
	case "competing":
		return discordgo.ActivityTypeCompeting
	default:
		return discordgo.ActivityTypeListening
	}
}
