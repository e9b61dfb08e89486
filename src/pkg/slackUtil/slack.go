package slackUtil

import (
    "fmt"

    "github.com/slack-go/slack"
    "github.com/veerajagannadham/Review-app/src/pkg/model"
    "github.com/veerajagannadham/Review-app/src/pkg/model/enum"
    "go.uber.org/zap"
)

/*
Slack CLI is unfortunately a paid feature: https://api.slack.com/automation/quickstart
So we have to use the web API instead: https://api.slack.com/web
*/

type Slack struct {
    client    *slack.Client
    log       *zap.SugaredLogger
    stage     enum.Stage
    channelId string
}

func NewSlack(logger *zap.SugaredLogger, stage enum.Stage, slackToken string, newReviewSlackBotChannelId string) *Slack {
    client := slack.New(slackToken)

    return &Slack{
        client:    client,
        log:       logger,
        stage:     stage,
        channelId: newReviewSlackBotChannelId,
    }
}

func (s *Slack) SendNewReviewMessage(review model.Review) error {
    msg1 := ""
    if s.stage != enum.StageProd {
        msg1 += "*[" + s.stage.String() + "]* "
    }
    msg1 += fmt.Sprintf("New review submitted for movie %d on %s:", review.MovieId, review.ReviewDate)

    respChannel, respTimestamp, err := s.client.PostMessage(
        s.channelId,
        slack.MsgOptionText(msg1, false),
    )
    if err != nil {
        s.log.Error("Unable to send message 1 to slack in SendNewReviewMessage: ", err)
        return err
    }

    s.log.Debugf("Message 1 successfully sent to slack channel %s at %s", respChannel, respTimestamp)

    blocks := []slack.Block{
        slack.NewSectionBlock(slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("Review %d by %s", review.ReviewId, review.ReviewerId), false, false), nil, nil),
        slack.NewSectionBlock(slack.NewTextBlockObject(slack.PlainTextType, review.Content, false, false), nil, nil),
        slack.NewDividerBlock(),
    }
    respChannel, respTimestamp, err = s.client.PostMessage(
        s.channelId,
        slack.MsgOptionBlocks(blocks...),
    )
    if err != nil {
        s.log.Error("Unable to send message 2 to slack in SendNewReviewMessage: ", err)
        return err
    }

    s.log.Debugf("Message 2 successfully sent to slack channel %s at %s", respChannel, respTimestamp)

    return nil
}
