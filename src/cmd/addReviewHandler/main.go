package main

import (
    "context"
    "encoding/json"

    "github.com/aws/aws-lambda-go/events"
    "github.com/aws/aws-lambda-go/lambda"
    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/aws/session"
    "github.com/aws/aws-sdk-go/service/dynamodb"
    "github.com/go-playground/validator/v10"
    "github.com/google/uuid"
    "github.com/veerajagannadham/Review-app/src/pkg/auth"
    "github.com/veerajagannadham/Review-app/src/pkg/config"
    "github.com/veerajagannadham/Review-app/src/pkg/ddbDao"
    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "github.com/veerajagannadham/Review-app/src/pkg/jsonUtil"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
    "github.com/veerajagannadham/Review-app/src/pkg/middleware"
    "github.com/veerajagannadham/Review-app/src/pkg/model"
    "github.com/veerajagannadham/Review-app/src/pkg/model/enum"
    "github.com/veerajagannadham/Review-app/src/pkg/secret"
    "github.com/veerajagannadham/Review-app/src/pkg/slackUtil"
    "go.uber.org/zap"
)

var jsonHeaders = map[string]string{"content-type": "application/json"}

func main() {
    lambda.Start(middleware.MetricMiddleware(enum.HandlerNameAddReviewHandler, handleRequest))
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
    log := logger.NewLogger().With("requestId", uuid.NewString())
    cfg, err := config.NewConfig()
    if err != nil {
        log.Error("Error resolving config: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Service misconfigured"}`, StatusCode: 500}, nil
    }
    log.Infof("Received request in %s: %s", cfg.Stage, jsonUtil.AnyToJson(request))

    // --------------------
    // parse request body
    // --------------------
    var addReviewRequest model.AddReviewRequest
    err = json.Unmarshal([]byte(request.Body), &addReviewRequest)
    if err != nil {
        log.Error("Error parsing request body: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error parsing request body"}`, StatusCode: 400}, nil
    }
    err = validator.New().Struct(addReviewRequest)
    if err != nil {
        log.Error("Validation error when parsing request body: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Validation error when parsing request body"}`, StatusCode: 400}, nil
    }

    // --------------------
    // authenticate caller
    // --------------------
    verifier, err := auth.NewVerifier(cfg, log)
    if err != nil {
        log.Error("Error initializing token verifier: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error initializing token verifier"}`, StatusCode: 500}, nil
    }
    claims, err := verifier.VerifyToken(auth.TokenFromHeaders(request.Headers))
    if err != nil {
        log.Error("Token verification failed: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Unauthorized"}`, StatusCode: 401}, nil
    }

    log.Debugf("Caller %s authenticated, proceeding", claims.Username())

    // --------------------
    // store review
    // --------------------
    mySession := session.Must(session.NewSession())
    reviewDao := ddbDao.NewReviewDao(dynamodb.New(mySession, aws.NewConfig().WithRegion(cfg.Region)), cfg.ReviewsTableName, log)

    review, err := reviewDao.AddReview(addReviewRequest.MovieId, addReviewRequest.Content, claims.Username())
    if err != nil {
        log.Error("Error creating review: ", err)

        switch err.(type) {
        case *exception.InvalidReviewException:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid review"}`, StatusCode: 400}, nil
        case *exception.ReviewAlreadyExistException:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Database conflict"}`, StatusCode: 500}, nil
        default:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error creating review"}`, StatusCode: 500}, nil
        }
    }

    log.Infof("Stored review %d for movie %d", review.ReviewId, review.MovieId)

    // notify ops channel. Best effort: the review is already stored
    notifyNewReview(log, cfg.Stage, review)

    return events.APIGatewayProxyResponse{
        Headers:    jsonHeaders,
        Body:       jsonUtil.AnyToJson(review),
        StatusCode: 201,
    }, nil
}

func notifyNewReview(log *zap.SugaredLogger, stage string, review model.Review) {
    secrets, err := secret.GetSecrets()
    if err != nil {
        log.Warn("Skipping slack notification, unable to load secrets: ", err)
        return
    }

    slackClient := slackUtil.NewSlack(log, enum.ToStage(stage), secrets.SlackToken, secrets.NewReviewSlackBotChannelId)
    err = slackClient.SendNewReviewMessage(review)
    if err != nil {
        log.Warn("Unable to send new review slack message: ", err)
    }
}
