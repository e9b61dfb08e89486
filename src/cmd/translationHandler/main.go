package main

import (
    "context"
    "strconv"

    "github.com/aws/aws-lambda-go/events"
    "github.com/aws/aws-lambda-go/lambda"
    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/aws/session"
    "github.com/aws/aws-sdk-go/service/dynamodb"
    "github.com/google/uuid"
    "github.com/veerajagannadham/Review-app/src/pkg/config"
    "github.com/veerajagannadham/Review-app/src/pkg/ddbDao"
    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "github.com/veerajagannadham/Review-app/src/pkg/jsonUtil"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
    "github.com/veerajagannadham/Review-app/src/pkg/middleware"
    "github.com/veerajagannadham/Review-app/src/pkg/model/enum"
    "github.com/veerajagannadham/Review-app/src/pkg/translateUtil"
    "github.com/veerajagannadham/Review-app/src/pkg/util"
)

var jsonHeaders = map[string]string{"content-type": "application/json"}

func main() {
    lambda.Start(middleware.MetricMiddleware(enum.HandlerNameTranslationHandler, handleRequest))
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
    // parse path and query
    // --------------------
    reviewId, err := strconv.ParseInt(request.PathParameters["reviewId"], 10, 64)
    if err != nil {
        log.Error("Invalid reviewId path parameter: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid reviewId"}`, StatusCode: 400}, nil
    }
    movieId, err := strconv.ParseInt(request.PathParameters["movieId"], 10, 64)
    if err != nil {
        log.Error("Invalid movieId path parameter: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid movieId"}`, StatusCode: 400}, nil
    }
    language := request.QueryStringParameters["language"]
    if util.IsEmptyString(language) {
        log.Error("Missing language query parameter")
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Missing language query parameter"}`, StatusCode: 400}, nil
    }

    // --------------------
    // translate via cache
    // --------------------
    mySession := session.Must(session.NewSession())
    reviewDao := ddbDao.NewReviewDao(dynamodb.New(mySession, aws.NewConfig().WithRegion(cfg.Region)), cfg.ReviewsTableName, log)
    translate := translateUtil.NewTranslate(mySession, cfg.TranslateRegion, log)
    cache := translateUtil.NewCache(reviewDao, translate, log)

    result, err := cache.GetTranslation(movieId, reviewId, language)
    if err != nil {
        log.Error("Error getting translation: ", err)

        switch err.(type) {
        case *exception.ReviewDoesNotExistException:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Review not found"}`, StatusCode: 404}, nil
        case *exception.TranslationException:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error translating review"}`, StatusCode: 500}, nil
        default:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error getting translation"}`, StatusCode: 500}, nil
        }
    }

    return events.APIGatewayProxyResponse{
        Headers:    jsonHeaders,
        Body:       jsonUtil.AnyToJson(result),
        StatusCode: 200,
    }, nil
}
