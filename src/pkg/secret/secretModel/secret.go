package secretModel

type Secrets struct {
    SlackToken                 string `json:"SlackToken"`
    NewReviewSlackBotChannelId string `json:"NewReviewSlackBotChannelId"`
}
