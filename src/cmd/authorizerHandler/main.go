package main

import (
    "context"
    "errors"

    "github.com/aws/aws-lambda-go/events"
    "github.com/aws/aws-lambda-go/lambda"
    "github.com/google/uuid"
    "github.com/veerajagannadham/Review-app/src/pkg/auth"
    "github.com/veerajagannadham/Review-app/src/pkg/config"
    "github.com/veerajagannadham/Review-app/src/pkg/jsonUtil"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
)

func main() {
    lambda.Start(handleRequest)
}

// API Gateway maps a handler error into a 401 for the caller. Returning a
// Deny policy instead would produce a 403, so every verification failure
// ends in the same Unauthorized error.
func handleRequest(ctx context.Context, request events.APIGatewayCustomAuthorizerRequestTypeRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
    log := logger.NewLogger().With("requestId", uuid.NewString())
    cfg, err := config.NewConfig()
    if err != nil {
        log.Error("Error resolving config: ", err)
        return events.APIGatewayCustomAuthorizerResponse{}, errors.New("Unauthorized")
    }
    log.Infof("Received authorization request in %s for %s", cfg.Stage, request.MethodArn)

    verifier, err := auth.NewVerifier(cfg, log)
    if err != nil {
        log.Error("Error initializing token verifier: ", err)
        return events.APIGatewayCustomAuthorizerResponse{}, errors.New("Unauthorized")
    }

    claims, err := verifier.VerifyToken(auth.TokenFromHeaders(request.Headers))
    if err != nil {
        log.Error("Token verification failed: ", err)
        return events.APIGatewayCustomAuthorizerResponse{}, errors.New("Unauthorized")
    }

    response := events.APIGatewayCustomAuthorizerResponse{
        PrincipalID: claims.Subject,
        PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
            Version: "2012-10-17",
            Statement: []events.IAMPolicyStatement{
                {
                    Action:   []string{"execute-api:Invoke"},
                    Effect:   "Allow",
                    Resource: []string{request.MethodArn},
                },
            },
        },
        Context: map[string]interface{}{
            "username": claims.Username(),
        },
    }

    log.Debug("Issued allow policy: ", jsonUtil.AnyToJson(response))

    return response, nil
}
