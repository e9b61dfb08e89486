package translateUtil

import (
    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/aws/session"
    "github.com/aws/aws-sdk-go/service/translate"
    "github.com/aws/aws-sdk-go/service/translate/translateiface"
    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "go.uber.org/zap"
)

// review content is authored in English; only the target language varies
const sourceLanguageCode = "en"

type Translate struct {
    client translateiface.TranslateAPI
    log    *zap.SugaredLogger
}

func NewTranslate(sess *session.Session, region string, logger *zap.SugaredLogger) *Translate {
    return &Translate{
        client: translate.New(sess, aws.NewConfig().WithRegion(region)),
        log:    logger,
    }
}

func (t *Translate) TranslateText(text string, targetLanguage string) (string, error) {
    output, err := t.client.Text(&translate.TextInput{
        SourceLanguageCode: aws.String(sourceLanguageCode),
        TargetLanguageCode: aws.String(targetLanguage),
        Text:               aws.String(text),
    })
    if err != nil {
        t.log.Errorf("TranslateText to %s failed: %v", targetLanguage, err)
        return "", exception.NewTranslationException("translation provider call failed: ", err)
    }

    return aws.StringValue(output.TranslatedText), nil
}
