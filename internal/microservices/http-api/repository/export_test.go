package repository

var ClassifyForTest = classify
