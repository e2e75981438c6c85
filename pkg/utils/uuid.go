package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const reportIDLength = 16

// GenerateReportID gera o identificador de um relatório de análise
func GenerateReportID() (string, error) {
	return gonanoid.Generate(characters, reportIDLength)
}
