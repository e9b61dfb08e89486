package enum

type Stage int

const (
    StageLocal Stage = iota
    StageAlpha
    StageBeta
    StageProd
)

func (s Stage) String() string {
    return []string{
        "local",
        "alpha",
        "beta",
        "prod",
    }[s]
}

func ToStage(stage string) Stage {
    switch stage {
    case "local":
        return StageLocal
    case "alpha":
        return StageAlpha
    case "beta":
        return StageBeta
    default:
        return StageProd
    }
}
