package main

import (
    "context"
    "encoding/json"
    "strconv"

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
)

var jsonHeaders = map[string]string{"content-type": "application/json"}

func main() {
    lambda.Start(middleware.MetricMiddleware(enum.HandlerNameUpdateReviewHandler, handleRequest))
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
    // parse path and body
    // --------------------
    movieId, err := strconv.ParseInt(request.PathParameters["movieId"], 10, 64)
    if err != nil {
        log.Error("Invalid movieId path parameter: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid movieId"}`, StatusCode: 400}, nil
    }
    reviewId, err := strconv.ParseInt(request.PathParameters["reviewId"], 10, 64)
    if err != nil {
        log.Error("Invalid reviewId path parameter: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid reviewId"}`, StatusCode: 400}, nil
    }

    var updateReviewRequest model.UpdateReviewRequest
    err = json.Unmarshal([]byte(request.Body), &updateReviewRequest)
    if err != nil {
        log.Error("Error parsing request body: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error parsing request body"}`, StatusCode: 400}, nil
    }
    err = validator.New().Struct(updateReviewRequest)
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

    // --------------------
    // update review
    // --------------------
    mySession := session.Must(session.NewSession())
    reviewDao := ddbDao.NewReviewDao(dynamodb.New(mySession, aws.NewConfig().WithRegion(cfg.Region)), cfg.ReviewsTableName, log)

    review, err := reviewDao.UpdateReviewContent(movieId, reviewId, updateReviewRequest.Content, claims.Username())
    if err != nil {
        log.Error("Error updating review: ", err)

        switch err.(type) {
        case *exception.ReviewDoesNotExistException:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Review not found"}`, StatusCode: 404}, nil
        case *exception.ForbiddenException:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Only the review author may update it"}`, StatusCode: 403}, nil
        case *exception.InvalidReviewException:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid review"}`, StatusCode: 400}, nil
        default:
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error updating review"}`, StatusCode: 500}, nil
        }
    }

    log.Infof("Updated review %d for movie %d", review.ReviewId, review.MovieId)

    return events.APIGatewayProxyResponse{
        Headers:    jsonHeaders,
        Body:       jsonUtil.AnyToJson(review),
        StatusCode: 200,
    }, nil
}
