package types

type QualifierKind string

const (
	QualifierNone    QualifierKind = ""
	QualifierExact   QualifierKind = "exact"
	QualifierPrefix  QualifierKind = "prefix"
	QualifierChannel QualifierKind = "channel"
)
