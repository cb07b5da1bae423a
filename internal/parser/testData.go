package parser

var (
	searchPageSuccessResponse string = `<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="utf-8" />
  <title>Результаты поиска «солярис» | Литрес</title>
</head>
<body>
<div class="search-page">
  <div class="art-item">
    <div class="art-item__cover"><img src="/covers/1.jpg" alt="" /></div>
    <div class="art-item__name"><a href="/book/stanislav-lem/solyaris-1/">Солярис</a></div>
    <div class="art-item__author"><a href="/author/stanislav-lem/">Станислав Лем</a></div>
    <div class="art-item__info">Объем: 370 тыс. знаков</div>
  </div>
  <div class="art-item">
    <div class="art-item__name"><a href="/book/stanislav-lem/solyaris-2/">
      Солярис.   Непобедимый
    </a></div>
    <div class="art-item__author"><a href="/author/stanislav-lem/">Станислав Лем</a></div>
  </div>
  <div class="art-item">
    <div class="art-item__name"><a href="/audiobook/unknown/"></a></div>
    <div class="art-item__author"><a href="/author/unknown/">Неизвестный</a></div>
  </div>
  <div class="art-item">
    <div class="art-item__name"><a href="/book/sbornik/">Сборник рассказов</a></div>
    <div class="art-item__info">9&nbsp;тыс.&nbsp;знаков</div>
  </div>
</div>
</body>
</html>`

	searchPageEmptyResponse string = `<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8" /><title>Ничего не найдено | Литрес</title></head>
<body><div class="search-page"><p>По вашему запросу ничего не найдено</p></div></body>
</html>`
)
